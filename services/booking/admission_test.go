package booking

import (
	"context"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleaningRequest(email, slot string) models.BookingRequest {
	return models.BookingRequest{
		PatientName:     "Patient",
		Email:           email,
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "2024-01-01",
		Slot:            slot,
		Price:           50,
	}
}

func TestSubmitCommitsBooking(t *testing.T) {
	bookings := &fakeBookings{}
	notifier := &fakeNotifier{}
	svc := &DefaultAdmissionService{Bookings: bookings, Notifier: notifier}

	b, err := svc.Submit(context.Background(), cleaningRequest("a@x.com", "08:00"))
	require.NoError(t, err)
	require.NotNil(t, b)

	assert.NotEmpty(t, b.ID)
	assert.False(t, b.Paid)
	assert.Equal(t, "Teeth Cleaning", b.Treatment)

	stored, err := bookings.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	require.Len(t, notifier.summaries, 1)
	assert.Equal(t, "a@x.com", notifier.summaries[0].Email)
	assert.Equal(t, "08:00", notifier.summaries[0].Slot)
}

func TestSubmitRejectsDuplicatePatientBooking(t *testing.T) {
	bookings := &fakeBookings{}
	svc := &DefaultAdmissionService{Bookings: bookings, Notifier: &fakeNotifier{}}

	_, err := svc.Submit(context.Background(), cleaningRequest("a@x.com", "08:00"))
	require.NoError(t, err)

	// Same (email, treatment, date) is rejected even though the requested
	// slot itself is still free; the admission check is not keyed on slot.
	_, err = svc.Submit(context.Background(), cleaningRequest("a@x.com", "09:00"))
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Message, "2024-01-01")

	stored, err := bookings.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Len(t, stored, 1, "conflicting request must not create a second record")
}

func TestSubmitRejectsTakenSlot(t *testing.T) {
	bookings := &fakeBookings{}
	svc := &DefaultAdmissionService{Bookings: bookings, Notifier: &fakeNotifier{}}

	_, err := svc.Submit(context.Background(), cleaningRequest("a@x.com", "08:00"))
	require.NoError(t, err)

	// A different patient racing onto the same slot is stopped by the
	// uniqueness index at insert time.
	_, err = svc.Submit(context.Background(), cleaningRequest("b@x.com", "08:00"))
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Message, "08:00")
}

func TestSubmitSurvivesNotifierFailure(t *testing.T) {
	bookings := &fakeBookings{}
	svc := &DefaultAdmissionService{
		Bookings: bookings,
		Notifier: &fakeNotifier{err: assert.AnError},
	}

	b, err := svc.Submit(context.Background(), cleaningRequest("a@x.com", "08:00"))
	require.NoError(t, err, "a failed notification must not roll back the booking")
	require.NotNil(t, b)

	stored, err := bookings.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestSubmitInvalidatesAvailabilityCache(t *testing.T) {
	catalog := &fakeCatalog{treatments: []models.Treatment{
		{ID: "t1", Name: "Teeth Cleaning", Price: 50, Slots: []string{"08:00", "09:00"}},
	}}
	bookings := &fakeBookings{}
	cache := newFakeCache()
	availability := &DefaultAvailabilityService{Catalog: catalog, Bookings: bookings, Cache: cache}
	admission := &DefaultAdmissionService{Bookings: bookings, Notifier: &fakeNotifier{}, Cache: cache}

	// Warm the cache for the date, then book a slot on it.
	options, err := availability.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"08:00", "09:00"}, options[0].Slots)
	require.Contains(t, cache.entries, "availability:2024-01-01")

	_, err = admission.Submit(context.Background(), cleaningRequest("a@x.com", "08:00"))
	require.NoError(t, err)
	assert.Contains(t, cache.deleted, "availability:2024-01-01")

	// The next availability read must reflect the new booking, not the
	// pre-booking cached payload.
	options, err = availability.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, options[0].Slots)
}

func TestBookingThenAvailabilityScenario(t *testing.T) {
	catalog := &fakeCatalog{treatments: []models.Treatment{
		{ID: "t1", Name: "Cleaning", Price: 50, Slots: []string{"08:00", "09:00"}},
	}}
	bookings := &fakeBookings{}
	admission := &DefaultAdmissionService{Bookings: bookings, Notifier: &fakeNotifier{}}
	availability := &DefaultAvailabilityService{Catalog: catalog, Bookings: bookings}

	_, err := admission.Submit(context.Background(), models.BookingRequest{
		Email: "a@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "08:00", Price: 50,
	})
	require.NoError(t, err)

	options, err := availability.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, []string{"09:00"}, options[0].Slots)

	_, err = admission.Submit(context.Background(), models.BookingRequest{
		Email: "a@x.com", Treatment: "Cleaning", AppointmentDate: "2024-01-01", Slot: "09:00", Price: 50,
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}
