package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"styleforage/config"
	"styleforage/models"
	"styleforage/services/mailer"
	"styleforage/services/tasks"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async worker in background.
func InitEmailWorker(mailSvc mailer.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendConfirmation, HandleConfirmationEmailTask(mailSvc))

	// Start async worker with retry logic
	go func() {
		log.Println("[EmailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// HandleConfirmationEmailTask sends one confirmation email. Delivery is
// best-effort: a failed send is logged and the task is never retried, so a
// broken email provider cannot back up the queue or the booking flow.
func HandleConfirmationEmailTask(mailSvc mailer.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var email models.ConfirmationEmail
		if err := json.Unmarshal(task.Payload(), &email); err != nil {
			log.Printf("[EmailWorker] Invalid payload: %v", err)
			return nil
		}

		if _, err := mailSvc.SendBookingConfirmation(ctx, email); err != nil {
			log.Printf("[EmailWorker] Failed to send confirmation to %s: %v", email.CustomerEmail, err)
		}
		return nil
	}
}
