package routes

import (
	"net/http"

	"hungry-dine-api/handlers"
	"hungry-dine-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the published API. Gating mirrors the contract the
// frontends were built against: a few menu routes and the graph statistics
// are deliberately open (see DESIGN.md).
func SetupRoutes(r *gin.Engine, h *handlers.Handler, jwtSecret []byte, users middleware.RoleLookup) {
	auth := middleware.AuthRequired(jwtSecret)
	admin := middleware.AdminRequired(users)

	// Liveness probe used by the hosting platform.
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hungry Dine Server Running")
	})

	r.POST("/jwt", h.IssueToken)

	// Users
	r.GET("/users", auth, admin, h.ListUsers)
	r.GET("/users/admin/:email", auth, h.CheckAdmin)
	r.POST("/users", h.CreateUser)
	r.PATCH("/users/admin/:id", auth, admin, h.UpdateUserRole)
	r.DELETE("/users/:id", auth, admin, h.DeleteUser)

	// Menu
	r.GET("/menus", h.ListMenu)
	r.GET("/menus/:id", h.GetMenuItem)
	r.GET("/menus/cart/items/:id", auth, h.OrderMenuItems)
	r.POST("/menus/addItem", auth, admin, h.AddMenuItem)
	r.PATCH("/menus/upItem/:id", h.UpdateMenuItem)
	r.DELETE("/menus/deleteItem/:id", auth, admin, h.DeleteMenuItem)

	// Reviews
	r.GET("/reviews", h.ListReviews)

	// Carts
	r.GET("/carts", h.ListCartItems)
	r.POST("/carts", h.AddCartItem)
	r.DELETE("/carts/:id", h.DeleteCartItem)

	// Payments
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
	r.POST("/user/payments", h.RecordPayment)
	r.GET("/user/payment-history", auth, h.PaymentHistory)

	// Admin statistics
	r.GET("/admin/statistic", auth, admin, h.AdminStats)
	r.GET("/admin/graph-statistics", h.CategoryStats)
}
