package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAdmissionService commits booking requests after de-duplicating by
// (appointmentDate, treatment, email).
type DefaultAdmissionService struct {
	Bookings bookingRepo.BookingRepository
	Notifier notification.Notifier
	Cache    Cache
}

// Submit runs the conflict check and, if it passes, commits the booking and
// fires the confirmation email. A conflicting request returns a ConflictError
// and leaves the store untouched.
func (s *DefaultAdmissionService) Submit(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	existing, err := s.Bookings.FindConflicts(ctx, req.AppointmentDate, req.Treatment, req.Email)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, NewConflictError(fmt.Sprintf("you already have a booking on %s", req.AppointmentDate))
	}

	booking := &models.Booking{
		ID:              uuid.New().String(),
		PatientName:     req.PatientName,
		Email:           req.Email,
		Treatment:       req.Treatment,
		AppointmentDate: req.AppointmentDate,
		Slot:            req.Slot,
		Price:           req.Price,
		Paid:            false,
		CreatedAt:       time.Now(),
	}

	if err := s.Bookings.Insert(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, NewConflictError(fmt.Sprintf("slot %s for %s on %s is already taken",
				req.Slot, req.Treatment, req.AppointmentDate))
		}
		return nil, err
	}

	// The cached availability for this date is now stale.
	if s.Cache != nil {
		if err := s.Cache.Del(ctx, availabilityCacheKey(req.AppointmentDate)); err != nil {
			logger.Warn("failed to invalidate availability cache",
				zap.String("date", req.AppointmentDate), zap.Error(err))
		}
	}

	if s.Notifier != nil {
		summary := models.BookingSummary{
			Email:           booking.Email,
			Treatment:       booking.Treatment,
			AppointmentDate: booking.AppointmentDate,
			Slot:            booking.Slot,
		}
		if err := s.Notifier.BookingConfirmed(ctx, summary); err != nil {
			logger.Error("failed to submit booking confirmation email",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}

	return booking, nil
}
