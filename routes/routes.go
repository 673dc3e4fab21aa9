package routes

import (
	"net/http"
	"time"

	"styleforage/handlers"
	"styleforage/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers service catalog and slot endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.GetServices)
		api.GET("/services/:id", hb.GetServiceByID)
		api.GET("/slots", hb.GetSlots)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.POST("/session/:sessionID/action", hb.ApplyAction)
		bookingGroup.POST("/session/:sessionID/payment-complete", hb.CompletePayment)
	}
}

// RegisterCollaboratorRoutes registers the payment, email and AI endpoints.
func RegisterCollaboratorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/create-payment-intent", hb.CreatePaymentIntent)
		api.POST("/send-booking-confirmation", hb.SendBookingConfirmation)
		api.POST("/style-advice", hb.GetStyleAdvice)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"health": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Collaborator endpoints are POST-only; answer 405 rather than 404.
	r.HandleMethodNotAllowed = true

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCollaboratorRoutes(r, hb)
	RegisterHealthRoute(r)
}
