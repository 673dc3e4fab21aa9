// File: styleforage/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"styleforage/config"
	"styleforage/cron"
	"styleforage/handlers"
	"styleforage/middleware"
	"styleforage/routes"
	"styleforage/services/advice"
	"styleforage/services/mailer"
	"styleforage/services/payment"
	"styleforage/services/tasks"
	"styleforage/services/wizard"
	"styleforage/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// services.
	sessionService := wizard.NewSessionService(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)
	intentService := payment.NewStripeIntentService(logger)
	mailService := mailer.NewResendMailer(logger)
	dispatcher := tasks.NewAsynqDispatcher(logger)

	var generator advice.TextGenerator
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := advice.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("main: Gemini client unavailable, advice will degrade", zap.Error(err))
		} else {
			generator = gemini
		}
	} else {
		logger.Warn("main: GEMINI_API_KEY not set, advice will degrade")
	}
	adviceService := advice.NewAdviceService(logger, generator)

	// Background email worker.
	cron.InitEmailWorker(mailService)

	// handlers.
	bookingHandler := handlers.NewBookingHandler(sessionService, dispatcher, logger)
	paymentHandler := handlers.NewPaymentHandler(intentService, logger)
	emailHandler := handlers.NewEmailHandler(mailService, logger)
	adviceHandler := handlers.NewAdviceHandler(adviceService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		GetServices:    handlers.GetServices,
		GetServiceByID: handlers.GetServiceByID,
		GetSlots:       handlers.GetSlots,

		// Booking session endpoints.
		StartSession:    bookingHandler.StartSession,
		GetSession:      bookingHandler.GetSession,
		ApplyAction:     bookingHandler.ApplyAction,
		CompletePayment: bookingHandler.CompletePayment,

		// Collaborator endpoints.
		CreatePaymentIntent:     paymentHandler.CreatePaymentIntent,
		SendBookingConfirmation: emailHandler.SendBookingConfirmation,
		GetStyleAdvice:          adviceHandler.GetStyleAdvice,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetSessionCacheClient())

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
