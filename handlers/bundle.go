package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every endpoint handler for route registration.
type HandlerBundle struct {
	// Catalog endpoints.
	GetServices    gin.HandlerFunc
	GetServiceByID gin.HandlerFunc
	GetSlots       gin.HandlerFunc

	// Booking session endpoints.
	StartSession    gin.HandlerFunc
	GetSession      gin.HandlerFunc
	ApplyAction     gin.HandlerFunc
	CompletePayment gin.HandlerFunc

	// Collaborator endpoints.
	CreatePaymentIntent     gin.HandlerFunc
	SendBookingConfirmation gin.HandlerFunc
	GetStyleAdvice          gin.HandlerFunc
}
