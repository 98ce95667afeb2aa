package notification

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/mailgun/mailgun-go/v4"
)

// MailgunMailer sends booking confirmation emails through Mailgun.
type MailgunMailer struct {
	mg     *mailgun.MailgunImpl
	sender string
}

func NewMailgunMailer(domain, apiKey, sender string) *MailgunMailer {
	return &MailgunMailer{
		mg:     mailgun.NewMailgun(domain, apiKey),
		sender: sender,
	}
}

// SendBookingConfirmation delivers the appointment confirmation email.
func (m *MailgunMailer) SendBookingConfirmation(ctx context.Context, summary models.BookingSummary) error {
	subject := fmt.Sprintf("Your treatment for %s is confirmed", summary.Treatment)
	text := fmt.Sprintf("Your appointment for %s is confirmed. Please visit us on %s at %s.",
		summary.Treatment, summary.AppointmentDate, summary.Slot)
	html := fmt.Sprintf(`
		<h3>Your appointment is confirmed</h3>
		<div>
		<p>Your appointment for treatment %s</p>
		<p>Please visit us on %s at %s</p>
		<p>Thanks from doctors portal</p>
		</div>`,
		summary.Treatment, summary.AppointmentDate, summary.Slot)

	message := m.mg.NewMessage(m.sender, subject, text, summary.Email)
	message.SetHtml(html)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, _, err := m.mg.Send(ctx, message); err != nil {
		return fmt.Errorf("failed to send confirmation email to %s: %w", summary.Email, err)
	}
	return nil
}
