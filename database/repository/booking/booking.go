package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

// ErrSlotTaken is returned by Insert when the (appointmentDate, treatment,
// slot) uniqueness index rejects the write.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository provides access to booking records.
type BookingRepository interface {
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	FindConflicts(ctx context.Context, date, treatment, email string) ([]models.Booking, error)
	Insert(ctx context.Context, booking *models.Booking) error
	MarkPaid(ctx context.Context, id, transactionID string) (int64, error)
}
