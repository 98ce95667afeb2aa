package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
)

// fakeCatalog serves a fixed treatment list, handing out fresh copies the way
// a driver decode would.
type fakeCatalog struct {
	treatments []models.Treatment
}

func (f *fakeCatalog) GetAll(ctx context.Context) ([]models.Treatment, error) {
	out := make([]models.Treatment, len(f.treatments))
	for i, t := range f.treatments {
		out[i] = t
		out[i].Slots = append([]string(nil), t.Slots...)
	}
	return out, nil
}

func (f *fakeCatalog) GetNames(ctx context.Context) ([]models.Speciality, error) {
	out := make([]models.Speciality, len(f.treatments))
	for i, t := range f.treatments {
		out[i] = models.Speciality{Name: t.Name}
	}
	return out, nil
}

// fakeBookings is an in-memory BookingRepository that mirrors the slot
// uniqueness index on insert.
type fakeBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (f *fakeBookings) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeBookings) FindConflicts(ctx context.Context, date, treatment, email string) ([]models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Booking
	for _, b := range f.bookings {
		if b.AppointmentDate == date && b.Treatment == treatment && b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookings) Insert(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.AppointmentDate == booking.AppointmentDate && b.Treatment == booking.Treatment && b.Slot == booking.Slot {
			return bookingRepo.ErrSlotTaken
		}
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookings) MarkPaid(ctx context.Context, id, transactionID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Paid = true
			f.bookings[i].TransactionID = transactionID
			return 1, nil
		}
	}
	return 0, nil
}

var errCacheMiss = errors.New("cache miss")

// fakeCache is an in-memory Cache that keeps a ledger of deletions so tests
// can observe invalidation.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]string
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]string)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.entries[key]
	if !ok {
		return "", errCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[key] = string(value)
	return nil
}

func (f *fakeCache) Del(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, key)
	f.deleted = append(f.deleted, key)
	return nil
}

// fakeNotifier records every confirmation it is asked to send.
type fakeNotifier struct {
	mu        sync.Mutex
	summaries []models.BookingSummary
	err       error
}

func (f *fakeNotifier) BookingConfirmed(ctx context.Context, summary models.BookingSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.summaries = append(f.summaries, summary)
	return nil
}
