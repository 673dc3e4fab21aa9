package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"styleforage/config"
	"styleforage/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMailer(baseURL string) *ResendMailer {
	return &ResendMailer{
		Logger:  zap.NewNop(),
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: time.Second},
	}
}

func TestSendBookingConfirmation_MissingRecipient(t *testing.T) {
	config.AppConfig.ResendAPIKey = "re_test"
	m := newTestMailer("http://invalid.localhost")

	_, err := m.SendBookingConfirmation(context.Background(), models.ConfirmationEmail{CustomerEmail: "  "})

	assert.ErrorIs(t, err, ErrMissingRecipient)
}

func TestSendBookingConfirmation_NotConfigured(t *testing.T) {
	config.AppConfig.ResendAPIKey = ""
	m := newTestMailer("http://invalid.localhost")

	_, err := m.SendBookingConfirmation(context.Background(), models.ConfirmationEmail{CustomerEmail: "jane@example.com"})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSendBookingConfirmation_Success(t *testing.T) {
	config.AppConfig.ResendAPIKey = "re_test"
	config.AppConfig.ResendFromEmail = "Style Forage <onboarding@resend.dev>"

	var got resendSendRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	id, err := m.SendBookingConfirmation(context.Background(), models.ConfirmationEmail{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Service:       "The Closet Edit",
		Date:          "June 10th",
		Times:         []string{"9:00AM"},
	})

	require.NoError(t, err)
	assert.Equal(t, "email_123", id)
	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, "jane@example.com", got.To)
	assert.Equal(t, "Booking confirmed: The Closet Edit | Style Forage", got.Subject)
	assert.Contains(t, got.HTML, "Jane Doe")
	assert.Contains(t, got.HTML, "June 10th")
	assert.Contains(t, got.HTML, "9:00AM")
}

func TestSendBookingConfirmation_UpstreamErrorSurfaces(t *testing.T) {
	config.AppConfig.ResendAPIKey = "re_test"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	m := newTestMailer(srv.URL)
	_, err := m.SendBookingConfirmation(context.Background(), models.ConfirmationEmail{CustomerEmail: "jane@example.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestConfirmationHTML_Placeholders(t *testing.T) {
	html := confirmationHTML("", "Styling Session", "", nil)

	assert.Contains(t, html, "Hi there,")
	assert.Contains(t, html, "—", "empty availability renders a dash")
	assert.Contains(t, html, "Styling Session")
}

func TestConfirmationHTML_EscapesCustomerInput(t *testing.T) {
	html := confirmationHTML("<script>alert(1)</script>", "Styling Session", "June 10th", []string{"9:00AM"})

	assert.False(t, strings.Contains(html, "<script>"), "customer input must be escaped")
}
