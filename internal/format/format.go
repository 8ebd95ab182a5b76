// Package format provides Turkish-locale formatting helpers for currency,
// durations and dates.
package format

import (
	"fmt"
	"strings"
	"time"
)

// monthsTR maps month numbers to Turkish month names.
var monthsTR = [...]string{
	1:  "Ocak",
	2:  "Şubat",
	3:  "Mart",
	4:  "Nisan",
	5:  "Mayıs",
	6:  "Haziran",
	7:  "Temmuz",
	8:  "Ağustos",
	9:  "Eylül",
	10: "Ekim",
	11: "Kasım",
	12: "Aralık",
}

// Currency formats an amount in the Turkish convention: dot as thousands
// separator, comma as decimal separator.
//
//	Currency(1250.50, "TRY") == "1.250,50 TRY"
func Currency(amount float64, currency string) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(whole, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	b.WriteByte(' ')
	b.WriteString(currency)
	return b.String()
}

// Duration formats a minute count as hours and minutes with the Turkish
// abbreviations saat/dakika.
//
//	Duration(185) == "3s 5d"
//
// Negative input renders as zero.
func Duration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	return fmt.Sprintf("%ds %dd", minutes/60, minutes%60)
}

// DateTimeStyle selects a DateTime output format.
type DateTimeStyle string

// Supported datetime styles.
const (
	StyleFull  DateTimeStyle = "full"  // "10 Ekim 2025, 08:30"
	StyleDate  DateTimeStyle = "date"  // "10 Ekim 2025"
	StyleTime  DateTimeStyle = "time"  // "08:30"
	StyleShort DateTimeStyle = "short" // "10.10.2025 08:30"
)

// DateTime formats a time in the requested Turkish style. Unknown styles
// fall back to "2006-01-02 15:04".
func DateTime(t time.Time, style DateTimeStyle) string {
	switch style {
	case StyleFull:
		return fmt.Sprintf("%d %s %d, %s", t.Day(), monthsTR[t.Month()], t.Year(), t.Format("15:04"))
	case StyleDate:
		return fmt.Sprintf("%d %s %d", t.Day(), monthsTR[t.Month()], t.Year())
	case StyleTime:
		return t.Format("15:04")
	case StyleShort:
		return t.Format("02.01.2006 15:04")
	default:
		return t.Format("2006-01-02 15:04")
	}
}

// TimeRange formats a departure/arrival pair as "08:30 - 10:30".
func TimeRange(departure, arrival time.Time) string {
	return departure.Format("15:04") + " - " + arrival.Format("15:04")
}

// dateInputLayouts are the accepted input formats for NormalizeDateInput,
// tried in order.
var dateInputLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"2006/01/02",
}

// NormalizeDateInput converts a date string in any accepted format to
// YYYY-MM-DD. Unrecognized input is returned unchanged.
func NormalizeDateInput(date string) string {
	if date == "" {
		return ""
	}
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return date
}
