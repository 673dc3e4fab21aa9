package models

// PaymentMetadata is attached to a payment intent so the charge can be
// traced back to a booking. All fields degrade to empty strings.
type PaymentMetadata struct {
	Service       string `json:"service"`
	Date          string `json:"date"`
	Times         string `json:"times"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// PaymentIntentRequest asks the payment collaborator for a client secret.
type PaymentIntentRequest struct {
	Amount   float64         `json:"amount"`
	Currency string          `json:"currency"`
	Metadata PaymentMetadata `json:"metadata"`
}

// PaymentIntentResponse carries the opaque token used to render the
// hosted payment UI.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
