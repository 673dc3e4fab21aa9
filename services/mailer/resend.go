package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"styleforage/config"
	"styleforage/models"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.resend.com"

// ErrMissingRecipient rejects sends without a customer email address.
var ErrMissingRecipient = errors.New("customer email is required")

// ErrNotConfigured is returned when the Resend API key is absent.
var ErrNotConfigured = errors.New("email service is not configured")

// Mailer sends booking confirmation emails. Sends are best-effort:
// the booking is confirmed whether or not the email goes out.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, email models.ConfirmationEmail) (string, error)
}

// ResendMailer delivers through the Resend REST API.
type ResendMailer struct {
	Logger  *zap.Logger
	BaseURL string
	Client  *http.Client
}

func NewResendMailer(logger *zap.Logger) *ResendMailer {
	return &ResendMailer{
		Logger:  logger,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type resendSendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type resendSendResponse struct {
	ID string `json:"id"`
}

// SendBookingConfirmation sends one confirmation email and returns the
// provider's message ID. Every field except the recipient degrades to
// placeholder text.
func (m *ResendMailer) SendBookingConfirmation(ctx context.Context, email models.ConfirmationEmail) (string, error) {
	if strings.TrimSpace(email.CustomerEmail) == "" {
		return "", ErrMissingRecipient
	}
	apiKey := config.AppConfig.ResendAPIKey
	if apiKey == "" {
		m.Logger.Error("SendBookingConfirmation: RESEND_API_KEY is not configured")
		return "", ErrNotConfigured
	}

	service := email.Service
	if service == "" {
		service = "Styling Session"
	}

	payload, err := json.Marshal(resendSendRequest{
		From:    config.AppConfig.ResendFromEmail,
		To:      email.CustomerEmail,
		Subject: fmt.Sprintf("Booking confirmed: %s | Style Forage", service),
		HTML:    confirmationHTML(email.CustomerName, service, email.Date, email.Times),
	})
	if err != nil {
		return "", fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.BaseURL+"/emails", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.Client.Do(req)
	if err != nil {
		m.Logger.Error("SendBookingConfirmation: transport error", zap.Error(err))
		return "", fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		m.Logger.Error("SendBookingConfirmation: Resend returned non-2xx", zap.Int("status", resp.StatusCode))
		return "", fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}

	var sent resendSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sent); err != nil {
		return "", fmt.Errorf("decode email response: %w", err)
	}

	m.Logger.Info("SendBookingConfirmation: email sent",
		zap.String("to", email.CustomerEmail),
		zap.String("id", sent.ID),
	)
	return sent.ID, nil
}
