package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the async email worker in background.
func InitEmailWorker(mailer *notification.MailgunMailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleBookingConfirmation(mailer))

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleBookingConfirmation delivers the confirmation email. Provider failures
// are logged and swallowed; a booking is never retried or rolled back over a
// missed email.
func handleBookingConfirmation(mailer *notification.MailgunMailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var summary models.BookingSummary
		if err := json.Unmarshal(task.Payload(), &summary); err != nil {
			log.Printf("[EmailWorker] invalid payload: %v", err)
			return nil
		}

		if err := mailer.SendBookingConfirmation(ctx, summary); err != nil {
			log.Printf("[EmailWorker] failed to send confirmation to %s: %v", summary.Email, err)
		}
		return nil
	}
}
