package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"styleforage/config"
	"styleforage/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendConfirmation = "email:booking_confirmation"

// NewConfirmationEmailTask packages one confirmation email as a queue task.
// MaxRetry is zero: the send is best-effort and a failure is only logged.
func NewConfirmationEmailTask(email models.ConfirmationEmail) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(email)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}

// Dispatcher hands confirmation emails to the background worker without
// blocking the caller on delivery.
type Dispatcher interface {
	DispatchConfirmationEmail(ctx context.Context, email models.ConfirmationEmail) error
}

// AsynqDispatcher enqueues onto the Redis-backed task queue.
type AsynqDispatcher struct {
	Logger *zap.Logger
	client *asynq.Client
}

func NewAsynqDispatcher(logger *zap.Logger) *AsynqDispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqDispatcher{Logger: logger, client: client}
}

func (d *AsynqDispatcher) DispatchConfirmationEmail(ctx context.Context, email models.ConfirmationEmail) error {
	task, opts, err := NewConfirmationEmailTask(email)
	if err != nil {
		return fmt.Errorf("build confirmation email task: %w", err)
	}
	info, err := d.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("enqueue confirmation email: %w", err)
	}
	d.Logger.Info("confirmation email enqueued",
		zap.String("taskID", info.ID),
		zap.String("to", email.CustomerEmail),
	)
	return nil
}
