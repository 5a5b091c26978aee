package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tuesday 2026-09-15, mid-morning
var testNow = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleConfig_IsWorkingDay(t *testing.T) {
	cfg := DefaultScheduleConfig()

	assert.True(t, cfg.IsWorkingDay(date(2026, 9, 14)))  // Monday
	assert.True(t, cfg.IsWorkingDay(date(2026, 9, 18)))  // Friday
	assert.False(t, cfg.IsWorkingDay(date(2026, 9, 19))) // Saturday
	assert.False(t, cfg.IsWorkingDay(date(2026, 9, 20))) // Sunday
}

func TestScheduleConfig_IsWorkingDay_CustomDays(t *testing.T) {
	cfg := DefaultScheduleConfig()
	cfg.WorkingDays = []time.Weekday{time.Saturday}

	assert.True(t, cfg.IsWorkingDay(date(2026, 9, 19)))
	assert.False(t, cfg.IsWorkingDay(date(2026, 9, 14)))
}

func TestScheduleConfig_IsBookableDate(t *testing.T) {
	cfg := DefaultScheduleConfig()

	t.Run("future working day", func(t *testing.T) {
		assert.True(t, cfg.IsBookableDate(date(2026, 9, 16), testNow))
	})

	t.Run("today is bookable", func(t *testing.T) {
		assert.True(t, cfg.IsBookableDate(date(2026, 9, 15), testNow))
	})

	t.Run("past working day", func(t *testing.T) {
		assert.False(t, cfg.IsBookableDate(date(2026, 9, 14), testNow))
	})

	t.Run("future weekend", func(t *testing.T) {
		assert.False(t, cfg.IsBookableDate(date(2026, 9, 19), testNow))
	})
}

func TestScheduleConfig_IsBeyondHorizon(t *testing.T) {
	cfg := DefaultScheduleConfig() // 8 weeks

	t.Run("inside horizon", func(t *testing.T) {
		assert.False(t, cfg.IsBeyondHorizon(date(2026, 9, 16), testNow))
		// Exactly 8 weeks out is still allowed
		assert.False(t, cfg.IsBeyondHorizon(date(2026, 11, 10), testNow))
	})

	t.Run("beyond horizon", func(t *testing.T) {
		assert.True(t, cfg.IsBeyondHorizon(date(2026, 11, 11), testNow))
	})

	t.Run("zero means unlimited", func(t *testing.T) {
		cfg := cfg
		cfg.MaxAdvanceWeeks = 0
		assert.False(t, cfg.IsBeyondHorizon(date(2030, 1, 1), testNow))
	})
}

func TestIsPastDate(t *testing.T) {
	assert.True(t, IsPastDate(date(2026, 9, 14), testNow))
	assert.False(t, IsPastDate(date(2026, 9, 15), testNow)) // today
	assert.False(t, IsPastDate(date(2026, 9, 16), testNow))

	// Time of day within today does not matter
	lateToday := time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC)
	assert.False(t, IsPastDate(date(2026, 9, 15), lateToday))
}

func TestIsSameDay(t *testing.T) {
	a := time.Date(2026, 9, 15, 0, 1, 0, 0, time.UTC)
	b := time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC)
	c := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsSameDay(a, b))
	assert.False(t, IsSameDay(b, c))
}
