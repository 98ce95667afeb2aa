package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler serves payment-intent creation and confirmation recording.
type PaymentHandler struct {
	Payments payment.PaymentService
}

func NewPaymentHandler(payments payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// CreatePaymentIntent returns a Stripe client secret for the booking's price.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input struct {
		Price float64 `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment intent payload", err.Error())
		return
	}

	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), input.Price)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment intent", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// RecordPayment stores the payment and marks the booking paid. A missing
// booking id still acknowledges; callers verify the booking state afterward.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payment payload", err.Error())
		return
	}

	record, matched, err := h.Payments.Confirm(c.Request.Context(), req)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to record payment", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"acknowledged":   true,
		"bookingUpdated": matched,
		"payment":        record,
	})
}
