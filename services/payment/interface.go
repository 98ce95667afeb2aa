package payment

import (
	"context"

	"doctorsportal/models"
)

// PaymentService creates gateway payment intents and records confirmations.
type PaymentService interface {
	// CreateIntent returns the client secret for a card charge of the given
	// price, in USD minor units.
	CreateIntent(ctx context.Context, price float64) (string, error)
	// Confirm stores the payment record and flips the referenced booking to
	// paid. The bool reports whether the booking existed; a missing booking
	// is a soft success, not an error.
	Confirm(ctx context.Context, req models.PaymentRequest) (*models.Payment, bool, error)
}
