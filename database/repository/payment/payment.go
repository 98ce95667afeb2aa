package paymentRepo

import (
	"context"

	"doctorsportal/models"
)

// PaymentRepository persists completed payment records.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *models.Payment) error
}
