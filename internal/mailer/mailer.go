// Package mailer sends outbound mail over SMTP. The Mailer interface is
// what the rest of the application depends on, so tests can substitute a
// recording fake.
package mailer

import (
	"fmt"
	"net/smtp"
)

// Mailer sends a single message to a single recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	host     string
	port     string
	sender   string
	password string
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTP creates a mailer for the given relay and sender credentials.
func NewSMTP(host, port, sender, password string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
	}
}

// Send delivers a plain text message.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.sender, to, subject, body)

	auth := smtp.PlainAuth("", m.sender, m.password, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.sender, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
