// Package notifier implements the notification dispatcher: email, SMS and
// push channels behind a single Send call with a bounded delivery history.
// SMS and push are always simulated; email falls back to simulation when no
// SMTP credentials are configured. Delivery failures never propagate to the
// caller beyond the boolean result.
package notifier

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/infrastructure/timeutil"
)

// Channel identifies a delivery channel.
type Channel string

// Supported channels.
const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	ChannelPush  Channel = "push"
)

// ValidChannel reports whether a channel name is supported.
func ValidChannel(name string) bool {
	switch Channel(name) {
	case ChannelEmail, ChannelSMS, ChannelPush:
		return true
	}
	return false
}

// DefaultSubject is used when an email is sent without an explicit subject.
const DefaultSubject = "En Uygun Uçak Bileti Bildirimi"

// Sender delivers a message over one channel.
type Sender interface {
	// Channel returns the channel this sender serves.
	Channel() Channel

	// Send delivers the message. Subject is only meaningful for email.
	Send(ctx context.Context, recipient, subject, message string) error
}

// Dispatcher routes notifications to channel senders and records every
// attempt in its bounded history.
type Dispatcher struct {
	senders map[Channel]Sender
	history *History
	clock   timeutil.Clock
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with the given senders. A nil clock
// falls back to the real clock.
func NewDispatcher(senders []Sender, clock timeutil.Clock, log zerolog.Logger) *Dispatcher {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	byChannel := make(map[Channel]Sender, len(senders))
	for _, s := range senders {
		if s != nil {
			byChannel[s.Channel()] = s
		}
	}

	return &Dispatcher{
		senders: byChannel,
		history: NewHistory(),
		clock:   clock,
		log:     log,
	}
}

// Send routes a message to the given channel and reports whether delivery
// succeeded. Every attempt, including unsupported channels and failed
// deliveries, lands in the history. Errors are swallowed: the boolean is
// the whole contract.
func (d *Dispatcher) Send(ctx context.Context, recipient, message string, channel Channel, subject string) bool {
	sender, ok := d.senders[channel]
	if !ok {
		d.log.Warn().Str("channel", string(channel)).Msg("Desteklenmeyen bildirim türü")
		d.history.Record(d.clock.Now(), recipient, message, string(channel), false)
		return false
	}

	if subject == "" {
		subject = DefaultSubject
	}

	err := sender.Send(ctx, recipient, subject, message)
	success := err == nil
	if err != nil {
		d.log.Error().
			Str("channel", string(channel)).
			Str("recipient", recipient).
			Err(err).
			Msg("Bildirim gönderme hatası")
	}

	d.history.Record(d.clock.Now(), recipient, message, string(channel), success)
	return success
}

// History returns recent log entries, optionally filtered by recipient.
func (d *Dispatcher) History(recipient string, limit int) []domain.NotificationLogEntry {
	return d.history.Entries(recipient, limit)
}

// HistoryLen returns the current history size.
func (d *Dispatcher) HistoryLen() int {
	return d.history.Len()
}
