package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealClock_Now(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	// The clock time should be between before and after
	assert.False(t, now.Before(before), "clock time should not be before start")
	assert.False(t, now.After(after), "clock time should not be after end")
}

func TestRealClock_Interface(t *testing.T) {
	// Ensure RealClock implements Clock interface
	var _ Clock = (*RealClock)(nil)
	var _ Clock = NewRealClock()
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	clock := NewMockClock(fixedTime)

	// Should always return the fixed time
	assert.Equal(t, fixedTime, clock.Now())
	assert.Equal(t, fixedTime, clock.Now())
	assert.Equal(t, fixedTime, clock.Now())
}

func TestMockClock_Set(t *testing.T) {
	initialTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	newTime := time.Date(2026, 3, 10, 13, 45, 0, 0, time.UTC)

	clock := NewMockClock(initialTime)
	assert.Equal(t, initialTime, clock.Now())

	clock.Set(newTime)
	assert.Equal(t, newTime, clock.Now())
}

func TestMockClock_Advance(t *testing.T) {
	initialTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := NewMockClock(initialTime)

	clock.Advance(30 * time.Minute)

	expected := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestMockClock_AdvanceMinutes(t *testing.T) {
	initialTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := NewMockClock(initialTime)

	clock.AdvanceMinutes(45)

	expected := time.Date(2026, 3, 10, 9, 45, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestMockClock_AdvanceHours(t *testing.T) {
	initialTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := NewMockClock(initialTime)

	clock.AdvanceHours(3)

	expected := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestMockClock_AdvanceDays(t *testing.T) {
	initialTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := NewMockClock(initialTime)

	clock.AdvanceDays(5)

	expected := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestMockClock_Interface(t *testing.T) {
	// Ensure MockClock implements Clock interface
	var _ Clock = (*MockClock)(nil)
	var _ Clock = NewMockClock(time.Now())
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2026-03-10T09:30:00Z")

	expected := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestNewMockClockFromString_Panic(t *testing.T) {
	assert.Panics(t, func() {
		NewMockClockFromString("invalid-time")
	})
}

func TestClock_UsageInCode(t *testing.T) {
	// Demonstrates injecting a Clock the way the offer providers do
	type offerService struct {
		clock Clock
	}

	nextDeparture := func(s *offerService) time.Time {
		return s.clock.Now().Add(2 * time.Hour)
	}

	// In tests, use MockClock
	fixedTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	service := &offerService{clock: NewMockClock(fixedTime)}

	departure := nextDeparture(service)
	expected := time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, departure)

	// In production, use RealClock
	realService := &offerService{clock: NewRealClock()}
	realDeparture := nextDeparture(realService)
	assert.True(t, realDeparture.After(time.Now()))
}

func TestMockClock_MultipleAdvances(t *testing.T) {
	initialTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := NewMockClock(initialTime)

	clock.AdvanceMinutes(30) // 09:30
	clock.AdvanceHours(2)    // 11:30
	clock.AdvanceDays(1)     // Next day 11:30

	expected := time.Date(2026, 3, 11, 11, 30, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestMockClock_NegativeAdvance(t *testing.T) {
	initialTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := NewMockClock(initialTime)

	// Can go backwards too
	clock.Advance(-2 * time.Hour)

	expected := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
	assert.Equal(t, expected, clock.Now())
}

func TestMockClock_WithTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	require.NoError(t, err)

	// Create time in Istanbul timezone
	istanbulTime := time.Date(2026, 3, 10, 17, 0, 0, 0, loc)
	clock := NewMockClock(istanbulTime)

	now := clock.Now()
	assert.Equal(t, loc, now.Location())
	assert.Equal(t, 17, now.Hour())
}
