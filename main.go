package main

import (
	"log"
	"time"

	"hungry-dine-api/billing"
	"hungry-dine-api/config"
	"hungry-dine-api/database"
	"hungry-dine-api/handlers"
	"hungry-dine-api/notify"
	"hungry-dine-api/routes"
	"hungry-dine-api/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	cfg := config.Load()

	// Connect the shared Mongo client
	client, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Printf("Failed to disconnect database: %v", err)
		}
	}()
	db := client.Database(cfg.Database.Name)
	log.Println("Database connected")

	// Stores share the one client for the process lifetime
	users := store.NewUsers(db)
	menu := store.NewMenu(db)
	reviews := store.NewReviews(db)
	carts := store.NewCarts(db)
	payments := store.NewPayments(db)

	gateway := billing.NewStripeGateway(cfg.Stripe.SecretKey)

	var mailer handlers.Mailer
	if cfg.Mail.APIKey != "" && cfg.Mail.Domain != "" {
		mailer = notify.NewOrderMailer(cfg.Mail)
	} else {
		log.Println("MAIL_API_KEY / MAIL_DOMAIN not set; order confirmation emails disabled")
	}

	h := handlers.NewHandler([]byte(cfg.JWT.Secret), users, menu, reviews, carts, payments, gateway, mailer)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS for the frontend
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	routes.SetupRoutes(r, h, []byte(cfg.JWT.Secret), users)

	log.Printf("Listening on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
