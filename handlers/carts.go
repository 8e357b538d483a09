package handlers

import (
	"net/http"

	"hungry-dine-api/models"

	"github.com/gin-gonic/gin"
)

// ListCartItems handles GET /carts?email=. The email query parameter is the
// only filter; an unknown email just yields an empty cart.
func (h *Handler) ListCartItems(c *gin.Context) {
	items, err := h.carts.ByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		storeError(c, "list cart items", err)
		return
	}
	if items == nil {
		items = []models.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}

// AddCartItem handles POST /carts.
func (h *Handler) AddCartItem(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.carts.Insert(c.Request.Context(), item)
	if err != nil {
		storeError(c, "insert cart item", err)
		return
	}
	c.JSON(http.StatusOK, insertResponse(res))
}

// DeleteCartItem handles DELETE /carts/:id. Deleting an id that is already
// gone is a successful no-op with deletedCount 0.
func (h *Handler) DeleteCartItem(c *gin.Context) {
	res, err := h.carts.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, "delete cart item", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse(res))
}
