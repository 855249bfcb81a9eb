package email

import (
	"fmt"
	"net/smtp"

	"eventhub/config"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Recipient is a (name, email) pair for cancellation notices.
type Recipient struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// Mailer sends the templated notification emails.
type Mailer interface {
	SendConfirmation(userName, userEmail, eventName, eventDate, eventVenue, eventCategory string, eventPrice float64) error
	SendCancellation(recipients []Recipient, eventName, eventDate, eventVenue string) error
}

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendConfirmation sends a registration confirmation email
func (s *Sender) SendConfirmation(userName, userEmail, eventName, eventDate, eventVenue, eventCategory string, eventPrice float64) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{userEmail}
	e.Subject = fmt.Sprintf("Registration Confirmation - %s", eventName)

	body := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Thank you for registering for %s.\n"+
			"Date: %s\n"+
			"Venue: %s\n"+
			"Category: %s\n"+
			"Price: %v\n\n"+
			"We look forward to seeing you there!\n\n"+
			"Regards,\nEvent Hub Team",
		userName, eventName, eventDate, eventVenue, eventCategory, eventPrice,
	)
	e.Text = []byte(body)

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send confirmation to %s: %v", userEmail, err)
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", userEmail, e.Subject)
	return nil
}

// SendCancellation sends one cancellation email per recipient. A transport
// error aborts the batch; partial success is not tracked per recipient.
func (s *Sender) SendCancellation(recipients []Recipient, eventName, eventDate, eventVenue string) error {
	for _, r := range recipients {
		e := email.NewEmail()
		e.From = s.cfg.SenderEmail
		e.To = []string{r.Email}
		e.Subject = fmt.Sprintf("Event Cancellation - %s", eventName)

		body := fmt.Sprintf(
			"Hello %s,\n\n"+
				"We regret to inform you that the event '%s', originally scheduled for %s at %s, "+
				"has been cancelled.\n\n"+
				"We apologize for the inconvenience.\n\n"+
				"Regards,\nEvent Portal Team",
			r.Name, eventName, eventDate, eventVenue,
		)
		e.Text = []byte(body)

		if err := s.send(e); err != nil {
			s.logger.Errorf("Failed to send cancellation to %s: %v", r.Email, err)
			return fmt.Errorf("failed to send cancellation emails: %w", err)
		}

		s.logger.Infof("Email sent to %s: %s", r.Email, e.Subject)
	}
	return nil
}

func (s *Sender) send(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return e.Send(addr, auth)
}
