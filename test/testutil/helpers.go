// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"testing"
	"time"

	"github.com/VVuslat/En-Uygun-U-ak-Bileti/internal/domain"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", value, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", value, err)
	}
	return parsed
}

// FutureDate returns a date string 30 days in the future in YYYY-MM-DD format.
func FutureDate() string {
	return time.Now().AddDate(0, 0, 30).Format(domain.DateLayout)
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
