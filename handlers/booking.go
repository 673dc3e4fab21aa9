package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"styleforage/models"
	"styleforage/services/tasks"
	"styleforage/services/wizard"
	"styleforage/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the wizard session endpoints.
type BookingHandler struct {
	Sessions   wizard.SessionService
	Dispatcher tasks.Dispatcher
	Logger     *zap.Logger
}

func NewBookingHandler(sessions wizard.SessionService, dispatcher tasks.Dispatcher, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Sessions:   sessions,
		Dispatcher: dispatcher,
		Logger:     logger,
	}
}

// StartSession handles POST /api/booking/session. An optional serviceId is
// the deep-link entry: a valid one starts the wizard at the date step.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var body struct {
		ServiceID string `json:"serviceId"`
	}
	// An empty body is a valid "start at the service step" request.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
			return
		}
	}

	sessionID, state, err := h.Sessions.Start(c.Request.Context(), body.ServiceID)
	if err != nil {
		h.Logger.Error("StartSession: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"state":     state,
	})
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	state, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, wizard.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
			return
		}
		h.Logger.Error("GetSession: failed to load session", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking session", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sessionID,
		"state":     state,
	})
}

// ApplyAction handles POST /api/booking/session/:sessionID/action. Guard
// violations get a 409 with a machine-readable reason and leave the session
// unchanged.
func (h *BookingHandler) ApplyAction(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var action models.Action
	if err := c.ShouldBindJSON(&action); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": err.Error()})
		return
	}
	if action.Type == models.ActionPaymentSucceeded {
		// Payment success only arrives through the payment-complete
		// endpoint so the email side effect cannot be skipped.
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": "payment completion has its own endpoint"})
		return
	}

	state, err := h.Sessions.Do(c.Request.Context(), sessionID, action)
	if err != nil {
		h.respondSessionError(c, sessionID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state})
}

// CompletePayment handles POST /api/booking/session/:sessionID/payment-complete.
// It is called after the hosted payment UI reports success: the wizard moves
// to confirmation and exactly one confirmation email is fired in the
// background. An email failure never blocks or reverses the transition.
func (h *BookingHandler) CompletePayment(c *gin.Context) {
	sessionID := c.Param("sessionID")

	state, err := h.Sessions.Do(c.Request.Context(), sessionID, models.Action{Type: models.ActionPaymentSucceeded})
	if err != nil {
		h.respondSessionError(c, sessionID, err)
		return
	}

	email := confirmationEmailFromState(state)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := h.Dispatcher.DispatchConfirmationEmail(ctx, email); err != nil {
			h.Logger.Error("CompletePayment: confirmation email dispatch failed",
				zap.String("sessionID", sessionID), zap.Error(err))
		}
	}()

	c.JSON(http.StatusOK, gin.H{"state": state})
}

func (h *BookingHandler) respondSessionError(c *gin.Context, sessionID string, err error) {
	var transition *wizard.TransitionError
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.As(err, &transition):
		c.JSON(http.StatusConflict, gin.H{"error": transition.Code, "message": transition.Message})
	default:
		h.Logger.Error("booking session operation failed", zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "booking session operation failed", "message": err.Error()})
	}
}

func confirmationEmailFromState(state models.BookingState) models.ConfirmationEmail {
	email := models.ConfirmationEmail{
		CustomerName:  state.CustomerDetails.Name,
		CustomerEmail: state.CustomerDetails.Email,
		Date:          utils.FormatLongDate(state.SelectedDate),
		Times:         state.SelectedTimes,
	}
	if state.SelectedService != nil {
		email.Service = state.SelectedService.Title
	}
	return email
}
