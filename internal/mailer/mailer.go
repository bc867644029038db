package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	mqcontracts "weddinghub/contracts/mq"
	"weddinghub/internal/config"
)

// Mailer sends RSVP notification emails through SendGrid: a
// confirmation to the submitter and a copy to the couple.
type Mailer struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

func New(cfg config.MailConfig, logger *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Configured reports whether an API key is present. Without one the
// notifier logs and skips delivery instead of failing.
func (m *Mailer) Configured() bool {
	return m.cfg.SendGridAPIKey != ""
}

func (m *Mailer) send(message *mail.SGMailV3) error {
	client := sendgrid.NewSendClient(m.cfg.SendGridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// SendRSVPConfirmation emails the submitter that their response was
// recorded.
func (m *Mailer) SendRSVPConfirmation(p mqcontracts.RSVPCreatedPayload) error {
	status := "Not Attending"
	if p.Attending {
		status = "Attending"
	}

	from := mail.NewEmail(m.cfg.FromName, m.cfg.FromEmail)
	to := mail.NewEmail(p.GuestName, p.Email)
	subject := "We received your RSVP!"
	plain := fmt.Sprintf(
		"Hi %s,\n\nThank you so much for RSVPing to our wedding. We have confirmed your response: %s.\n\nWe can't wait to celebrate with you!\n\nBest,\n%s",
		p.GuestName, status, m.cfg.FromName,
	)
	html := fmt.Sprintf(
		"<h1>RSVP Confirmation</h1><p>Hi %s,</p><p>Thank you so much for RSVPing to our wedding. We have confirmed your response: <strong>%s</strong>.</p><p>Best,<br>%s</p>",
		p.GuestName, status, m.cfg.FromName,
	)

	return m.send(mail.NewSingleEmail(from, subject, to, plain, html))
}

// SendCoupleNotification emails the couple about a new submission.
func (m *Mailer) SendCoupleNotification(p mqcontracts.RSVPCreatedPayload) error {
	if m.cfg.CoupleEmail == "" {
		return nil
	}

	attending := "No"
	if p.Attending {
		attending = "Yes"
	}

	from := mail.NewEmail("Wedding Bot", m.cfg.FromEmail)
	to := mail.NewEmail(m.cfg.FromName, m.cfg.CoupleEmail)
	subject := fmt.Sprintf("New RSVP from %s", p.GuestName)
	body := fmt.Sprintf(
		"Name: %s\nAttending: %s\nGuests: %d\nDietary: %s\nMessage: %s",
		p.GuestName, attending, p.NumberOfGuests, p.DietaryRestrictions, p.Message,
	)

	return m.send(mail.NewSingleEmailPlainText(from, subject, to, body))
}
