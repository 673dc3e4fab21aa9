package handlers

import (
	"errors"
	"net/http"

	"styleforage/models"
	"styleforage/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler bridges the booking flow to the payment collaborator.
type PaymentHandler struct {
	Intents payment.IntentService
	Logger  *zap.Logger
}

func NewPaymentHandler(intents payment.IntentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Intents: intents, Logger: logger}
}

// CreatePaymentIntent handles POST /api/create-payment-intent. Failure
// detail is logged; the client only ever sees the static copy.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}

	clientSecret, err := h.Intents.CreateIntent(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valid amount is required"})
		case errors.Is(err, payment.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Payment service unavailable",
				"message": "Payment processing is currently unavailable. Please try again later.",
			})
		default:
			h.Logger.Error("CreatePaymentIntent: intent creation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Payment error",
				"message": "Unable to process payment. Please try again.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.PaymentIntentResponse{ClientSecret: clientSecret})
}
