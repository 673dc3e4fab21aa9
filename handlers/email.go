package handlers

import (
	"errors"
	"net/http"

	"styleforage/models"
	"styleforage/services/mailer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailHandler exposes the confirmation email send as its own endpoint.
type EmailHandler struct {
	Mail   mailer.Mailer
	Logger *zap.Logger
}

func NewEmailHandler(mail mailer.Mailer, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{Mail: mail, Logger: logger}
}

// SendBookingConfirmation handles POST /api/send-booking-confirmation. The
// error copy reassures the customer: by the time this runs, the booking
// itself is already confirmed.
func (h *EmailHandler) SendBookingConfirmation(c *gin.Context) {
	var req models.ConfirmationEmail
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}

	id, err := h.Mail.SendBookingConfirmation(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, mailer.ErrMissingRecipient):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Customer email is required"})
		case errors.Is(err, mailer.ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Email service unavailable",
				"message": "Confirmation email could not be sent. Your booking is confirmed.",
			})
		default:
			h.Logger.Error("SendBookingConfirmation: send failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to send email",
				"message": "Your booking is confirmed. We could not send the confirmation email.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.ConfirmationEmailResponse{Success: true, ID: id})
}
