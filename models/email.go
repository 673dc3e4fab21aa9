package models

// ConfirmationEmail is the payload of a booking confirmation email.
// CustomerEmail is required; everything else degrades to placeholder text.
type ConfirmationEmail struct {
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail"`
	Service       string   `json:"service"`
	Date          string   `json:"date"`
	Times         []string `json:"times"`
}

// ConfirmationEmailResponse reports the send result.
type ConfirmationEmailResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}
