package handlers

import (
	"context"
	"log"
	"net/http"

	"hungry-dine-api/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store contracts consumed by the handlers. Each operation maps to a single
// driver call; writes and deletes surface the driver's raw result structs.

type UserStore interface {
	All(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (*mongo.InsertOneResult, error)
	SetRole(ctx context.Context, id string, role models.UserRole) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type MenuStore interface {
	All(ctx context.Context) ([]models.MenuItem, error)
	FindByID(ctx context.Context, id string) (*models.MenuItem, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.MenuItem, error)
	Insert(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error)
	Update(ctx context.Context, id string, upd models.MenuItemUpdate) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type ReviewStore interface {
	All(ctx context.Context) ([]models.Review, error)
}

type CartStore interface {
	ByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Insert(ctx context.Context, item models.CartItem) (*mongo.InsertOneResult, error)
	Delete(ctx context.Context, id string) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, ids []string) (*mongo.DeleteResult, error)
}

type PaymentStore interface {
	ByEmail(ctx context.Context, email string) ([]models.Payment, error)
	FindByID(ctx context.Context, id string) (*models.Payment, error)
	Insert(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error)
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CategorySales(ctx context.Context) ([]models.CategorySales, error)
}

// PaymentGateway creates a payment intent and returns its client secret.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// Mailer sends the order-confirmation email.
type Mailer interface {
	SendOrderConfirmation(ctx context.Context, payment models.Payment) error
}

// Handler carries the injected stores and gateways; every route handler is
// a method on it. A nil Mailer disables confirmation emails.
type Handler struct {
	jwtSecret []byte
	users     UserStore
	menu      MenuStore
	reviews   ReviewStore
	carts     CartStore
	payments  PaymentStore
	gateway   PaymentGateway
	mailer    Mailer
}

func NewHandler(jwtSecret []byte, users UserStore, menu MenuStore, reviews ReviewStore,
	carts CartStore, payments PaymentStore, gateway PaymentGateway, mailer Mailer) *Handler {
	return &Handler{
		jwtSecret: jwtSecret,
		users:     users,
		menu:      menu,
		reviews:   reviews,
		carts:     carts,
		payments:  payments,
		gateway:   gateway,
		mailer:    mailer,
	}
}

// storeError logs the failed store operation and answers with a 500. The
// client never sees driver internals.
func storeError(c *gin.Context, op string, err error) {
	log.Printf("store error: %s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// Response shapes mirror the Node Mongo driver's result casing so existing
// frontends keep parsing them.

func insertResponse(res *mongo.InsertOneResult) gin.H {
	return gin.H{"acknowledged": true, "insertedId": res.InsertedID}
}

func updateResponse(res *mongo.UpdateResult) gin.H {
	return gin.H{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
		"upsertedCount": res.UpsertedCount,
		"upsertedId":    res.UpsertedID,
	}
}

func deleteResponse(res *mongo.DeleteResult) gin.H {
	return gin.H{"acknowledged": true, "deletedCount": res.DeletedCount}
}
