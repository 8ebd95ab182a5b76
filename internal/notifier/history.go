package notifier

import (
	"sync"
	"time"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
)

// HistoryLimit caps the in-memory notification log. Oldest entries are
// evicted first.
const HistoryLimit = 1000

// messageTruncateAt is the rune count above which logged messages are cut.
const messageTruncateAt = 100

// History is a bounded FIFO log of notification attempts.
// Safe for concurrent use.
type History struct {
	mu      sync.Mutex
	entries []domain.NotificationLogEntry
	limit   int
}

// NewHistory creates an empty history with the default limit.
func NewHistory() *History {
	return &History{limit: HistoryLimit}
}

// Record appends an attempt to the history, truncating the message and
// evicting the oldest entries beyond the limit.
func (h *History) Record(at time.Time, recipient, message, channel string, success bool) {
	entry := domain.NotificationLogEntry{
		Timestamp: at,
		Recipient: recipient,
		Message:   truncateMessage(message),
		Channel:   channel,
		Success:   success,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry)
	if excess := len(h.entries) - h.limit; excess > 0 {
		h.entries = append([]domain.NotificationLogEntry(nil), h.entries[excess:]...)
	}
}

// Entries returns the most recent entries, optionally filtered by recipient.
// A limit of 0 or less returns everything that matches.
func (h *History) Entries(recipient string, limit int) []domain.NotificationLogEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	matched := make([]domain.NotificationLogEntry, 0, len(h.entries))
	for _, e := range h.entries {
		if recipient != "" && e.Recipient != recipient {
			continue
		}
		matched = append(matched, e)
	}

	if limit > 0 && len(matched) > limit {
		matched = matched[len(matched)-limit:]
	}
	return matched
}

// Len returns the number of entries currently held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// truncateMessage cuts long messages to keep log entries small.
func truncateMessage(message string) string {
	runes := []rune(message)
	if len(runes) <= messageTruncateAt {
		return message
	}
	return string(runes[:messageTruncateAt]) + "..."
}
