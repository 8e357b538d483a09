package handlers

import (
	"net/http"

	"hungry-dine-api/models"

	"github.com/gin-gonic/gin"
)

// AdminStats handles GET /admin/statistic: total revenue plus headline
// counts for the dashboard.
func (h *Handler) AdminStats(c *gin.Context) {
	ctx := c.Request.Context()

	revenue, err := h.payments.TotalRevenue(ctx)
	if err != nil {
		storeError(c, "total revenue", err)
		return
	}
	menus, err := h.menu.Count(ctx)
	if err != nil {
		storeError(c, "count menu items", err)
		return
	}
	orders, err := h.payments.Count(ctx)
	if err != nil {
		storeError(c, "count payments", err)
		return
	}
	users, err := h.users.Count(ctx)
	if err != nil {
		storeError(c, "count users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"revenue": revenue,
		"menus":   menus,
		"orders":  orders,
		"users":   users,
	})
}

// CategoryStats handles GET /admin/graph-statistics: per-category order
// volume and revenue. Group order is whatever the store yields.
func (h *Handler) CategoryStats(c *gin.Context) {
	rows, err := h.payments.CategorySales(c.Request.Context())
	if err != nil {
		storeError(c, "category sales", err)
		return
	}
	if rows == nil {
		rows = []models.CategorySales{}
	}
	c.JSON(http.StatusOK, rows)
}
