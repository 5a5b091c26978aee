package domain

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/pkg/types"
)

// ScheduleConfig describes the station working schedule and slot grid.
// It is configuration data injected from the config file, not hard-coded logic.
type ScheduleConfig struct {
	BusinessStart       types.TimeString
	BusinessEnd         types.TimeString
	WorkingDays         []time.Weekday
	SlotDurationMinutes int
	MaxAdvanceWeeks     int // 0 = unlimited booking horizon
}

// DefaultScheduleConfig returns the station defaults (Mon-Fri 08:30-17:30, 30 min slots)
func DefaultScheduleConfig() ScheduleConfig {
	return ScheduleConfig{
		BusinessStart:       types.TimeString(DefaultBusinessStart),
		BusinessEnd:         types.TimeString(DefaultBusinessEnd),
		WorkingDays:         DefaultWorkingDays,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
		MaxAdvanceWeeks:     DefaultMaxAdvanceWeeks,
	}
}

// IsWorkingDay returns true if the weekday of date is in the working-day set
func (c ScheduleConfig) IsWorkingDay(date time.Time) bool {
	weekday := date.Weekday()
	for _, wd := range c.WorkingDays {
		if weekday == wd {
			return true
		}
	}
	return false
}

// IsBookableDate returns true for a working day that is not in the past.
// The caller supplies a single "now" snapshot so one render pass never
// observes two different clocks.
func (c ScheduleConfig) IsBookableDate(date, now time.Time) bool {
	return c.IsWorkingDay(date) && !IsPastDate(date, now)
}

// IsBeyondHorizon returns true if date is further ahead than MaxAdvanceWeeks
func (c ScheduleConfig) IsBeyondHorizon(date, now time.Time) bool {
	if c.MaxAdvanceWeeks <= 0 {
		return false
	}
	maxDate := TruncateToDay(now).AddDate(0, 0, c.MaxAdvanceWeeks*7)
	return TruncateToDay(date).After(maxDate)
}

// IsPastDate returns true if date (truncated to midnight, local time)
// is strictly before today's midnight
func IsPastDate(date, now time.Time) bool {
	return TruncateToDay(date).Before(TruncateToDay(now))
}

// IsSameDay returns true if both timestamps fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TruncateToDay drops the time component, keeping the location
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
