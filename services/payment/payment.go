package payment

import (
	"context"
	"fmt"
	"math"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// DefaultPaymentService implements PaymentService on Stripe plus the payment
// and booking stores.
type DefaultPaymentService struct {
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
}

// CreateIntent asks Stripe for a card payment intent over price*100 minor
// units, fixed at USD.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}

// Confirm records the payment document and marks the referenced booking paid.
// A transaction id against a booking that no longer exists updates nothing
// and is reported as matched=false.
func (s *DefaultPaymentService) Confirm(ctx context.Context, req models.PaymentRequest) (*models.Payment, bool, error) {
	logger := utils.GetLogger()

	record := &models.Payment{
		ID:            uuid.New().String(),
		BookingID:     req.BookingID,
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		CreatedAt:     time.Now(),
	}
	if err := s.Payments.Insert(ctx, record); err != nil {
		return nil, false, err
	}

	matched, err := s.Bookings.MarkPaid(ctx, req.BookingID, req.TransactionID)
	if err != nil {
		return nil, false, err
	}
	if matched == 0 {
		logger.Warn("payment confirmation matched no booking",
			zap.String("bookingID", req.BookingID),
			zap.String("transactionID", req.TransactionID))
	}
	return record, matched > 0, nil
}
