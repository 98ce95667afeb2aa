package booking

import (
	"context"
	"encoding/json"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	catalogRepo "doctorsportal/database/repository/catalog"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

const availabilityCacheTTL = 30 * time.Second

// DefaultAvailabilityService computes per-date remaining slots by subtracting
// that day's bookings from the catalog schedule.
type DefaultAvailabilityService struct {
	Catalog  catalogRepo.CatalogRepository
	Bookings bookingRepo.BookingRepository
	Cache    Cache
}

// AvailableOptions returns every catalog treatment with its slot list reduced
// to the slots not yet booked on the given date. Catalog order is preserved
// and a fully booked treatment is still returned with an empty slot list.
func (s *DefaultAvailabilityService) AvailableOptions(ctx context.Context, date string) ([]models.Treatment, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, availabilityCacheKey(date)); err == nil {
			var options []models.Treatment
			if err := json.Unmarshal([]byte(cached), &options); err == nil {
				return options, nil
			}
			logger.Warn("discarding unreadable availability cache entry", zap.String("date", date))
		}
	}

	options, err := s.Catalog.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	booked, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	// Partition the day's bookings by treatment name, collecting taken slots.
	taken := make(map[string]map[string]bool, len(options))
	for _, b := range booked {
		if taken[b.Treatment] == nil {
			taken[b.Treatment] = make(map[string]bool)
		}
		taken[b.Treatment][b.Slot] = true
	}

	for i := range options {
		remaining := make([]string, 0, len(options[i].Slots))
		for _, slot := range options[i].Slots {
			if !taken[options[i].Name][slot] {
				remaining = append(remaining, slot)
			}
		}
		options[i].Slots = remaining
	}

	if s.Cache != nil {
		if data, err := json.Marshal(options); err == nil {
			if err := s.Cache.Set(ctx, availabilityCacheKey(date), data, availabilityCacheTTL); err != nil {
				logger.Warn("failed to cache availability", zap.String("date", date), zap.Error(err))
			}
		}
	}

	return options, nil
}

// Specialities returns the catalog projected down to treatment names.
func (s *DefaultAvailabilityService) Specialities(ctx context.Context) ([]models.Speciality, error) {
	return s.Catalog.GetNames(ctx)
}

func availabilityCacheKey(date string) string {
	return "availability:" + date
}
