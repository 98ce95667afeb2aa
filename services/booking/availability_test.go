package booking

import (
	"context"
	"encoding/json"
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *fakeCatalog {
	return &fakeCatalog{treatments: []models.Treatment{
		{ID: "t1", Name: "Teeth Cleaning", Price: 50, Slots: []string{"08:00", "09:00", "10:00"}},
		{ID: "t2", Name: "Cavity Protection", Price: 80, Slots: []string{"08:00", "09:00"}},
		{ID: "t3", Name: "Oral Surgery", Price: 300, Slots: []string{"11:00"}},
	}}
}

func TestAvailableOptionsSubtractsBookedSlots(t *testing.T) {
	bookings := &fakeBookings{bookings: []models.Booking{
		{ID: "b1", Email: "a@x.com", Treatment: "Teeth Cleaning", AppointmentDate: "2024-01-01", Slot: "09:00"},
		{ID: "b2", Email: "b@x.com", Treatment: "Cavity Protection", AppointmentDate: "2024-01-01", Slot: "08:00"},
		{ID: "b3", Email: "c@x.com", Treatment: "Teeth Cleaning", AppointmentDate: "2024-01-02", Slot: "08:00"}, // other date
	}}
	svc := &DefaultAvailabilityService{Catalog: testCatalog(), Bookings: bookings}

	options, err := svc.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	require.Len(t, options, 3)

	assert.Equal(t, []string{"08:00", "10:00"}, options[0].Slots)
	assert.Equal(t, []string{"09:00"}, options[1].Slots)
	assert.Equal(t, []string{"11:00"}, options[2].Slots)
}

func TestAvailableOptionsKeepsFullyBookedTreatments(t *testing.T) {
	bookings := &fakeBookings{bookings: []models.Booking{
		{ID: "b1", Email: "a@x.com", Treatment: "Oral Surgery", AppointmentDate: "2024-01-01", Slot: "11:00"},
	}}
	svc := &DefaultAvailabilityService{Catalog: testCatalog(), Bookings: bookings}

	options, err := svc.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	require.Len(t, options, 3)

	// A treatment with no remaining slots is still returned, with an empty
	// (not nil) slot list.
	assert.Equal(t, "Oral Surgery", options[2].Name)
	assert.NotNil(t, options[2].Slots)
	assert.Empty(t, options[2].Slots)
}

func TestAvailableOptionsIsIdempotent(t *testing.T) {
	bookings := &fakeBookings{bookings: []models.Booking{
		{ID: "b1", Email: "a@x.com", Treatment: "Teeth Cleaning", AppointmentDate: "2024-01-01", Slot: "08:00"},
	}}
	svc := &DefaultAvailabilityService{Catalog: testCatalog(), Bookings: bookings}

	first, err := svc.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	second, err := svc.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAvailableOptionsNoBookings(t *testing.T) {
	svc := &DefaultAvailabilityService{Catalog: testCatalog(), Bookings: &fakeBookings{}}

	options, err := svc.AvailableOptions(context.Background(), "2024-06-15")
	require.NoError(t, err)
	require.Len(t, options, 3)
	// Catalog order and slot order are preserved untouched.
	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, options[0].Slots)
	assert.Equal(t, "Cavity Protection", options[1].Name)
}

func TestAvailableOptionsServesFromCache(t *testing.T) {
	bookings := &fakeBookings{}
	cache := newFakeCache()
	svc := &DefaultAvailabilityService{Catalog: testCatalog(), Bookings: bookings, Cache: cache}

	first, err := svc.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	require.Contains(t, cache.entries, "availability:2024-01-01")

	// A booking written behind the cache's back is invisible until the entry
	// expires or is invalidated.
	require.NoError(t, bookings.Insert(context.Background(), &models.Booking{
		ID: "b1", Email: "a@x.com", Treatment: "Oral Surgery", AppointmentDate: "2024-01-01", Slot: "11:00",
	}))

	second, err := svc.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"11:00"}, second[2].Slots)
}

func TestAvailableOptionsDiscardsUnreadableCacheEntry(t *testing.T) {
	bookings := &fakeBookings{bookings: []models.Booking{
		{ID: "b1", Email: "a@x.com", Treatment: "Teeth Cleaning", AppointmentDate: "2024-01-01", Slot: "08:00"},
	}}
	cache := newFakeCache()
	cache.entries["availability:2024-01-01"] = `{not json`
	svc := &DefaultAvailabilityService{Catalog: testCatalog(), Bookings: bookings, Cache: cache}

	options, err := svc.AvailableOptions(context.Background(), "2024-01-01")
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, []string{"09:00", "10:00"}, options[0].Slots)

	// The garbage entry got overwritten with the fresh computation.
	assert.NotEqual(t, `{not json`, cache.entries["availability:2024-01-01"])
}

func TestSpecialitiesProjectsNamesOnly(t *testing.T) {
	svc := &DefaultAvailabilityService{Catalog: testCatalog(), Bookings: &fakeBookings{}}

	specialities, err := svc.Specialities(context.Background())
	require.NoError(t, err)
	require.Len(t, specialities, 3)
	assert.Equal(t, models.Speciality{Name: "Teeth Cleaning"}, specialities[0])

	// The wire payload carries only the name field.
	data, err := json.Marshal(specialities[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Teeth Cleaning"}`, string(data))
}
