package payment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"styleforage/config"
	"styleforage/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ErrInvalidAmount rejects zero or negative charge amounts before any call
// to the payment collaborator.
var ErrInvalidAmount = errors.New("valid amount is required")

// ErrNotConfigured is returned (wrapped in InitError) when the Stripe secret
// key is absent.
var ErrNotConfigured = errors.New("stripe key not configured")

// InitError wraps every non-validation failure of intent creation: missing
// configuration, transport failure, or a processor-side error. Callers show
// the static "payment unavailable" copy and log the cause.
type InitError struct {
	cause error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("payment intent init failed: %v", e.cause)
}

func (e *InitError) Unwrap() error { return e.cause }

// IntentService creates payment intents with the payment collaborator.
type IntentService interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (string, error)
}

// StripeIntentService is the production implementation.
type StripeIntentService struct {
	Logger *zap.Logger

	// create is swappable for tests; defaults to the Stripe SDK call.
	create func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func NewStripeIntentService(logger *zap.Logger) *StripeIntentService {
	return &StripeIntentService{
		Logger: logger,
		create: paymentintent.New,
	}
}

// CreateIntent requests a payment intent and returns its client secret, the
// opaque token the hosted payment UI is initialized with.
func (s *StripeIntentService) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (string, error) {
	if req.Amount <= 0 {
		return "", ErrInvalidAmount
	}
	if config.AppConfig.StripeSecretKey == "" {
		s.Logger.Error("CreateIntent: STRIPE_SECRET_KEY is not configured")
		return "", &InitError{cause: ErrNotConfigured}
	}

	currency := req.Currency
	if currency == "" {
		currency = config.AppConfig.DefaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		// Stripe expects amounts in the smallest currency unit.
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("service", req.Metadata.Service)
	params.AddMetadata("date", req.Metadata.Date)
	params.AddMetadata("times", req.Metadata.Times)
	params.AddMetadata("customerName", req.Metadata.CustomerName)
	params.AddMetadata("customerEmail", req.Metadata.CustomerEmail)

	intent, err := s.create(params)
	if err != nil {
		s.Logger.Error("CreateIntent: stripe API error", zap.Error(err))
		return "", &InitError{cause: err}
	}

	s.Logger.Info("CreateIntent: payment intent created",
		zap.String("service", req.Metadata.Service),
		zap.Float64("amount", req.Amount),
		zap.String("currency", currency),
	)
	return intent.ClientSecret, nil
}
