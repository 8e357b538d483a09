package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"hungry-dine-api/middleware"
	"hungry-dine-api/models"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntent handles POST /create-payment-intent. It only brokers
// the client secret; the card flow itself happens between the browser and
// the gateway.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	secret, err := h.gateway.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		log.Printf("payment intent failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// RecordPayment handles POST /user/payments: record the payment, clear the
// paid cart rows, respond with both raw results. The confirmation email runs
// detached and never gates the response. There is no transaction around the
// two writes; a crash in between leaves stale cart rows behind.
func (h *Handler) RecordPayment(c *gin.Context) {
	var payment models.Payment
	if err := c.ShouldBindJSON(&payment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	ctx := c.Request.Context()
	paymentResult, err := h.payments.Insert(ctx, payment)
	if err != nil {
		storeError(c, "record payment", err)
		return
	}
	deleteResult, err := h.carts.DeleteMany(ctx, payment.CartIDs)
	if err != nil {
		storeError(c, "clear cart", err)
		return
	}

	if h.mailer != nil {
		go h.sendConfirmation(payment)
	}

	c.JSON(http.StatusOK, gin.H{
		"paymentResult": insertResponse(paymentResult),
		"deleteResult":  deleteResponse(deleteResult),
	})
}

// sendConfirmation runs outside the request lifecycle. Failures are logged
// and dropped; there is no retry.
func (h *Handler) sendConfirmation(payment models.Payment) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := h.mailer.SendOrderConfirmation(ctx, payment); err != nil {
		log.Printf("order confirmation email failed: %v", err)
	}
}

// PaymentHistory handles GET /user/payment-history?email=. Callers may only
// read their own history.
func (h *Handler) PaymentHistory(c *gin.Context) {
	email := c.Query("email")
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}
	payments, err := h.payments.ByEmail(c.Request.Context(), email)
	if err != nil {
		storeError(c, "payment history", err)
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}
