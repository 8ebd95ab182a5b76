package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMustParseTime(t *testing.T) {
	parsed := MustParseTime(t, "2026-12-15T08:00:00Z")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.December, parsed.Month())
	assert.Equal(t, 8, parsed.Hour())
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2026-12-15")
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, 15, parsed.Day())
}

func TestFutureDate(t *testing.T) {
	date := FutureDate()
	parsed := MustParseDate(t, date)
	assert.True(t, parsed.After(time.Now()))
}

func TestPtr(t *testing.T) {
	p := Ptr(42)
	assert.Equal(t, 42, *p)

	s := Ptr("ankara")
	assert.Equal(t, "ankara", *s)
}
