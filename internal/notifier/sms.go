package notifier

import (
	"context"

	"github.com/rs/zerolog"
)

// SMSSender is a simulated SMS channel. There is no real SMS integration;
// every send logs the message and succeeds.
type SMSSender struct {
	log zerolog.Logger
}

// NewSMSSender creates a simulated SMS sender.
func NewSMSSender(log zerolog.Logger) *SMSSender {
	return &SMSSender{log: log}
}

// Channel implements Sender.
func (s *SMSSender) Channel() Channel {
	return ChannelSMS
}

// Send implements Sender.
func (s *SMSSender) Send(ctx context.Context, recipient, subject, message string) error {
	s.log.Info().
		Str("phone", recipient).
		Str("message", message).
		Msg("SMS bildirim simülasyonu")
	return nil
}

// PushSender is a simulated push notification channel.
type PushSender struct {
	log zerolog.Logger
}

// NewPushSender creates a simulated push sender.
func NewPushSender(log zerolog.Logger) *PushSender {
	return &PushSender{log: log}
}

// Channel implements Sender.
func (p *PushSender) Channel() Channel {
	return ChannelPush
}

// Send implements Sender.
func (p *PushSender) Send(ctx context.Context, recipient, subject, message string) error {
	p.log.Info().
		Str("user", recipient).
		Str("message", message).
		Msg("Push bildirim simülasyonu")
	return nil
}

var (
	_ Sender = (*SMSSender)(nil)
	_ Sender = (*PushSender)(nil)
)
