package services

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer delivers one-time codes to users. Delivery is best-effort: callers
// dispatch sends asynchronously and only log failures.
type Mailer interface {
	SendOTP(to, code string) error
}

// SMTPMailer sends OTP mail through a configured SMTP relay.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewSMTPMailer creates an SMTPMailer. With an empty host the mailer runs
// disabled and logs instead of dialing, which keeps local development working
// without a relay.
func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendOTP emails the confirmation code.
func (m *SMTPMailer) SendOTP(to, code string) error {
	if m.host == "" {
		log.Printf("[Mail] SMTP not configured, skipping OTP mail to %s", to)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "OTP Verification")
	msg.SetBody("text/plain", fmt.Sprintf("Your OTP is %s", code))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
