package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/format"
)

func TestCurrency(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		currency string
		expected string
	}{
		{name: "thousands separator", amount: 1250.50, currency: "TRY", expected: "1.250,50 TRY"},
		{name: "small amount", amount: 99.9, currency: "TRY", expected: "99,90 TRY"},
		{name: "whole number", amount: 500, currency: "TRY", expected: "500,00 TRY"},
		{name: "millions", amount: 1234567.89, currency: "TRY", expected: "1.234.567,89 TRY"},
		{name: "zero", amount: 0, currency: "TRY", expected: "0,00 TRY"},
		{name: "negative", amount: -1250.5, currency: "TRY", expected: "-1.250,50 TRY"},
		{name: "other currency", amount: 450, currency: "EUR", expected: "450,00 EUR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, format.Currency(tc.amount, tc.currency))
		})
	}
}

func TestDuration(t *testing.T) {
	testCases := []struct {
		name     string
		minutes  int
		expected string
	}{
		{name: "hours and minutes", minutes: 185, expected: "3s 5d"},
		{name: "exact hour", minutes: 120, expected: "2s 0d"},
		{name: "under an hour", minutes: 45, expected: "0s 45d"},
		{name: "zero", minutes: 0, expected: "0s 0d"},
		{name: "negative clamps to zero", minutes: -30, expected: "0s 0d"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, format.Duration(tc.minutes))
		})
	}
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2025, 10, 10, 8, 30, 0, 0, time.UTC)

	assert.Equal(t, "10 Ekim 2025, 08:30", format.DateTime(ts, format.StyleFull))
	assert.Equal(t, "10 Ekim 2025", format.DateTime(ts, format.StyleDate))
	assert.Equal(t, "08:30", format.DateTime(ts, format.StyleTime))
	assert.Equal(t, "10.10.2025 08:30", format.DateTime(ts, format.StyleShort))
	assert.Equal(t, "2025-10-10 08:30", format.DateTime(ts, "bogus"))
}

func TestTimeRange(t *testing.T) {
	dep := time.Date(2025, 10, 10, 8, 30, 0, 0, time.UTC)
	arr := time.Date(2025, 10, 10, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "08:30 - 10:30", format.TimeRange(dep, arr))
}

func TestNormalizeDateInput(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "iso passthrough", input: "2025-10-10", expected: "2025-10-10"},
		{name: "dotted turkish", input: "10.10.2025", expected: "2025-10-10"},
		{name: "slashed day first", input: "10/10/2025", expected: "2025-10-10"},
		{name: "slashed year first", input: "2025/10/10", expected: "2025-10-10"},
		{name: "garbage unchanged", input: "next tuesday", expected: "next tuesday"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, format.NormalizeDateInput(tc.input))
		})
	}
}
