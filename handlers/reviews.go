package handlers

import (
	"net/http"

	"hungry-dine-api/models"

	"github.com/gin-gonic/gin"
)

// ListReviews handles GET /reviews.
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.reviews.All(c.Request.Context())
	if err != nil {
		storeError(c, "list reviews", err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}
