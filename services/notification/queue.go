package notification

import (
	"context"
	"fmt"

	"doctorsportal/models"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
)

// QueueNotifier enqueues confirmation emails onto the Redis-backed task queue
// so the booking flow never waits on the mail provider.
type QueueNotifier struct {
	Client *asynq.Client
}

func NewQueueNotifier(client *asynq.Client) *QueueNotifier {
	return &QueueNotifier{Client: client}
}

// BookingConfirmed submits a confirmation-email task for the worker to pick up.
func (n *QueueNotifier) BookingConfirmed(ctx context.Context, summary models.BookingSummary) error {
	task, err := tasks.NewBookingConfirmationTask(summary)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	if _, err := n.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}
