package models

import "time"

// Payment is the persisted record of a completed gateway charge.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Email         string    `bson:"email" json:"email"`
	Price         float64   `bson:"price" json:"price"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// PaymentRequest is the inbound payload for recording a confirmed payment.
type PaymentRequest struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	Email         string  `json:"email"`
	Price         float64 `json:"price"`
	TransactionID string  `json:"transactionId" binding:"required"`
}
