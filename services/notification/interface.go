package notification

import (
	"context"

	"doctorsportal/models"
)

// Notifier is the capability the admission controller depends on. A failed
// notification never rolls back the booking it confirms.
type Notifier interface {
	BookingConfirmed(ctx context.Context, summary models.BookingSummary) error
}
