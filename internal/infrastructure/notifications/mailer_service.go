package notifications

import (
	"fmt"
	"log"

	"github.com/you/playconnect/domain"
	"gopkg.in/gomail.v2"
)

// SMTPMailerImpl implements domain.MailerService
type SMTPMailerImpl struct {
	dialer *gomail.Dialer
	from   string
	host   string
}

// NewSMTPMailer creates a new SMTP notification service
func NewSMTPMailer(host string, port int, username, password, from string) domain.MailerService {
	return &SMTPMailerImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		host:   host,
	}
}

// SendResetCode implements domain.MailerService
func (m *SMTPMailerImpl) SendResetCode(to, code string) error {
	// If SMTP is not configured, log instead of sending
	if m.host == "" {
		log.Printf("[MOCK EMAIL] To: %s, Reset code: %s", to, code)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "PlayConnect password reset code")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your PlayConnect password reset code is: %s\n\nThe code expires shortly. If you did not request a reset, ignore this email.", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}
