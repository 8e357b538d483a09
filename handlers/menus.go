package handlers

import (
	"net/http"

	"hungry-dine-api/models"

	"github.com/gin-gonic/gin"
)

// ListMenu handles GET /menus.
func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.menu.All(c.Request.Context())
	if err != nil {
		storeError(c, "list menu", err)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItem handles GET /menus/:id.
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, err := h.menu.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, "find menu item", err)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "menu item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// OrderMenuItems handles GET /menus/cart/items/:id. It resolves the menu
// items of a recorded payment so an order detail page can render them.
// Ids that no longer match a menu document are left out of the result.
func (h *Handler) OrderMenuItems(c *gin.Context) {
	ctx := c.Request.Context()
	payment, err := h.payments.FindByID(ctx, c.Param("id"))
	if err != nil {
		storeError(c, "find payment", err)
		return
	}
	if payment == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
		return
	}
	items, err := h.menu.FindByIDs(ctx, payment.MenuIDs)
	if err != nil {
		storeError(c, "resolve menu items", err)
		return
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem handles POST /menus/addItem — admin only.
func (h *Handler) AddMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.menu.Insert(c.Request.Context(), item)
	if err != nil {
		storeError(c, "insert menu item", err)
		return
	}
	c.JSON(http.StatusOK, insertResponse(res))
}

// UpdateMenuItem handles PATCH /menus/upItem/:id. Only the recognized menu
// fields are set; anything else on the document survives untouched.
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	var upd models.MenuItemUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.menu.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		storeError(c, "update menu item", err)
		return
	}
	c.JSON(http.StatusOK, updateResponse(res))
}

// DeleteMenuItem handles DELETE /menus/deleteItem/:id — admin only.
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	res, err := h.menu.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, "delete menu item", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse(res))
}
