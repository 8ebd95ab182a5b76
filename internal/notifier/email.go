package notifier

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// EmailSender delivers email over SMTP when credentials are configured,
// and simulates delivery (log only, always successful) when they are not.
type EmailSender struct {
	host     string
	port     int
	address  string
	password string
	log      zerolog.Logger

	// dial is swappable for tests; defaults to a gomail dial-and-send.
	dial func(m *gomail.Message) error
}

// NewEmailSender creates an EmailSender. Address and password may be empty,
// in which case every send is simulated.
func NewEmailSender(host string, port int, address, password string, log zerolog.Logger) *EmailSender {
	s := &EmailSender{
		host:     host,
		port:     port,
		address:  address,
		password: password,
		log:      log,
	}
	s.dial = func(m *gomail.Message) error {
		d := gomail.NewDialer(s.host, s.port, s.address, s.password)
		return d.DialAndSend(m)
	}
	return s
}

// Channel implements Sender.
func (s *EmailSender) Channel() Channel {
	return ChannelEmail
}

// Configured reports whether real SMTP delivery is possible.
func (s *EmailSender) Configured() bool {
	return s.address != "" && s.password != ""
}

// Send implements Sender. Without credentials the send is simulated and
// succeeds; with credentials a failing SMTP dial surfaces as an error so
// the dispatcher can record the failure.
func (s *EmailSender) Send(ctx context.Context, recipient, subject, message string) error {
	if !s.Configured() {
		s.log.Info().
			Str("recipient", recipient).
			Str("subject", subject).
			Str("message", message).
			Msg("E-posta bildirim simülasyonu")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.address)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain; charset=UTF-8", message)

	if err := s.dial(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Ensure EmailSender implements Sender at compile time.
var _ Sender = (*EmailSender)(nil)
