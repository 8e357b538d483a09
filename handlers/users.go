package handlers

import (
	"net/http"

	"hungry-dine-api/middleware"
	"hungry-dine-api/models"

	"github.com/gin-gonic/gin"
)

// IssueToken handles POST /jwt. The client posts its identity at login or
// signup and gets a short-lived token back.
func (h *Handler) IssueToken(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Name  string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := middleware.GenerateToken(h.jwtSecret, req.Email, req.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListUsers handles GET /users — admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.All(c.Request.Context())
	if err != nil {
		storeError(c, "list users", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin handles GET /users/admin/:email. Callers may only ask about
// themselves.
func (h *Handler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}
	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		storeError(c, "find user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
}

// CreateUser handles POST /users. Signup is idempotent on email: a repeat
// post answers with the sentinel insertedId:null body instead of an error,
// which is what the frontend branches on.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	existing, err := h.users.FindByEmail(ctx, user.Email)
	if err != nil {
		storeError(c, "find user", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusOK, gin.H{"message": "User Already Exists", "insertedId": nil})
		return
	}
	res, err := h.users.Insert(ctx, user)
	if err != nil {
		storeError(c, "insert user", err)
		return
	}
	c.JSON(http.StatusOK, insertResponse(res))
}

// UpdateUserRole handles PATCH /users/admin/:id — admin only.
func (h *Handler) UpdateUserRole(c *gin.Context) {
	var req struct {
		Role models.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.users.SetRole(c.Request.Context(), c.Param("id"), req.Role)
	if err != nil {
		storeError(c, "update user role", err)
		return
	}
	c.JSON(http.StatusOK, updateResponse(res))
}

// DeleteUser handles DELETE /users/:id — admin only.
func (h *Handler) DeleteUser(c *gin.Context) {
	res, err := h.users.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, deleteResponse(res))
}
