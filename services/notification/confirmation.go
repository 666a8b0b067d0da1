package notification

import (
	"context"
	"fmt"

	"stayhub/models"
	"stayhub/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ConfirmationNotifier enqueues booking confirmation emails. Dispatch is
// best-effort: a failure here is reported as a warning and never affects
// the booking outcome.
type ConfirmationNotifier interface {
	EnqueueConfirmation(ctx context.Context, payload models.ConfirmationEmail) error
}

// DefaultConfirmationNotifier queues confirmation emails through asynq;
// the cron worker delivers them.
type DefaultConfirmationNotifier struct {
	Queue  *asynq.Client
	Logger *zap.Logger
}

func NewDefaultConfirmationNotifier(queue *asynq.Client, logger *zap.Logger) *DefaultConfirmationNotifier {
	return &DefaultConfirmationNotifier{Queue: queue, Logger: logger}
}

// EnqueueConfirmation queues one confirmation email for delivery.
func (n *DefaultConfirmationNotifier) EnqueueConfirmation(ctx context.Context, payload models.ConfirmationEmail) error {
	task, opts, err := tasks.NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	info, err := n.Queue.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue confirmation email: %w", err)
	}
	n.Logger.Info("confirmation email enqueued",
		zap.String("taskId", info.ID),
		zap.String("confirmationNumber", payload.ConfirmationNumber))
	return nil
}
