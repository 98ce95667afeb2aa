package models

import "time"

// Booking represents a confirmed reservation of one slot for one treatment,
// by one patient, on one date.
type Booking struct {
	ID              string    `bson:"id" json:"id"`                                       // Unique booking identifier (UUID)
	PatientName     string    `bson:"patientName,omitempty" json:"patientName,omitempty"` // Display name from the booking form
	Email           string    `bson:"email" json:"email"`                                 // Patient email
	Treatment       string    `bson:"treatment" json:"treatment"`                         // Treatment name (references Treatment.Name by value)
	AppointmentDate string    `bson:"appointmentDate" json:"appointmentDate"`             // Date string, matched exactly against availability queries
	Slot            string    `bson:"slot" json:"slot"`                                   // Time label, e.g. "08:00"
	Price           float64   `bson:"price" json:"price"`                                 // Price at booking time
	Paid            bool      `bson:"paid" json:"paid"`                                   // Flipped once by payment confirmation
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRequest is the inbound payload for the admission controller.
type BookingRequest struct {
	PatientName     string  `json:"patientName"`
	Email           string  `json:"email" binding:"required"`
	Treatment       string  `json:"treatment" binding:"required"`
	AppointmentDate string  `json:"appointmentDate" binding:"required"`
	Slot            string  `json:"slot" binding:"required"`
	Price           float64 `json:"price"`
}

// BookingSummary carries the fields the confirmation email needs.
type BookingSummary struct {
	Email           string `json:"email"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointmentDate"`
	Slot            string `json:"slot"`
}
