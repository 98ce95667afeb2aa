package payment

import (
	"context"
	"sync"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayments struct {
	mu      sync.Mutex
	records []models.Payment
}

func (f *fakePayments) Insert(ctx context.Context, payment *models.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, *payment)
	return nil
}

type fakeBookings struct {
	mu       sync.Mutex
	bookings []models.Booking
}

func (f *fakeBookings) GetByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookings) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookings) FindConflicts(ctx context.Context, date, treatment, email string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookings) Insert(ctx context.Context, booking *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, *booking)
	return nil
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

func TestConfirmMarksBookingPaid(t *testing.T) {
	bookings := &fakeBookings{bookings: []models.Booking{
		{ID: "b1", Email: "a@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "08:00"},
	}}
	payments := &fakePayments{}
	svc := &DefaultPaymentService{Payments: payments, Bookings: bookings}

	record, matched, err := svc.Confirm(context.Background(), models.PaymentRequest{
		BookingID:     "b1",
		Email:         "a@x.com",
		Price:         50,
		TransactionID: "tx_123",
	})
	require.NoError(t, err)
	assert.True(t, matched)
	require.Len(t, payments.records, 1)
	assert.Equal(t, "tx_123", record.TransactionID)

	b, err := bookings.GetByID(context.Background(), "b1")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, b.Paid)
	assert.Equal(t, "tx_123", b.TransactionID)
}

func TestConfirmOnMissingBookingIsSoftSuccess(t *testing.T) {
	payments := &fakePayments{}
	svc := &DefaultPaymentService{Payments: payments, Bookings: &fakeBookings{}}

	record, matched, err := svc.Confirm(context.Background(), models.PaymentRequest{
		BookingID:     "missing",
		TransactionID: "tx_999",
	})
	require.NoError(t, err, "confirmation on a nonexistent id must not fail")
	assert.False(t, matched)
	assert.NotNil(t, record)
	// The payment record is still persisted for reconciliation.
	assert.Len(t, payments.records, 1)
}
