package tasks

import (
	"encoding/json"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "email:booking_confirmation"

func NewBookingConfirmationTask(summary models.BookingSummary) (*asynq.Task, error) {
	b, err := json.Marshal(summary)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingConfirmation, b), nil
}
