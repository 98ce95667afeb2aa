package booking

import (
	"context"

	"doctorsportal/models"
)

// AvailabilityService computes which appointment slots remain open for a date.
type AvailabilityService interface {
	AvailableOptions(ctx context.Context, date string) ([]models.Treatment, error)
	Specialities(ctx context.Context) ([]models.Speciality, error)
}

// AdmissionService decides whether a booking request may be committed.
type AdmissionService interface {
	Submit(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
}
