package models

// AdviceRequest is a single, context-free style question.
type AdviceRequest struct {
	Query string `json:"query"`
}

// AdviceResponse carries the stylist's reply.
type AdviceResponse struct {
	Message string `json:"message"`
}
