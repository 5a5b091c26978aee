package get_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

// Tuesday 2026-09-15, 10:00 local
var testNow = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

func testSchedule() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		BusinessStart:       "08:30",
		BusinessEnd:         "17:30",
		WorkingDays:         []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		SlotDurationMinutes: 30,
		MaxAdvanceWeeks:     8,
	}
}

func TestMonthGridRange(t *testing.T) {
	t.Run("september 2026", func(t *testing.T) {
		// 2026-09-01 is a Tuesday, 2026-09-30 is a Wednesday
		start, end := monthGridRange(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), start) // Monday
		assert.Equal(t, time.Date(2026, 10, 4, 0, 0, 0, 0, time.UTC), end)  // Sunday
	})

	t.Run("month starting on monday", func(t *testing.T) {
		// 2026-06-01 is a Monday
		start, end := monthGridRange(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

		assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Weekday(time.Sunday), end.Weekday())
	})

	t.Run("grid is always whole weeks", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			start, end := monthGridRange(time.Date(2026, time.Month(month), 1, 0, 0, 0, 0, time.UTC))

			assert.Equal(t, time.Monday, start.Weekday(), "month %d", month)
			assert.Equal(t, time.Sunday, end.Weekday(), "month %d", month)

			days := int(end.Sub(start).Hours()/24) + 1
			assert.Zero(t, days%7, "month %d", month)
		}
	})
}

func TestBuildDays(t *testing.T) {
	month := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	gridStart, gridEnd := monthGridRange(month)

	t.Run("flags", func(t *testing.T) {
		selected := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)
		counts := map[string]int{"2026-09-16": 3}

		days := buildDays(testSchedule(), month, gridStart, gridEnd, counts, &selected, testNow)
		require.Len(t, days, 35) // 5 whole weeks

		byDate := make(map[string]domain.CalendarDay, len(days))
		for _, d := range days {
			byDate[d.Date.Format(domain.DateFormat)] = d
		}

		// Edge day from the previous month
		aug31 := byDate["2026-08-31"]
		assert.False(t, aug31.IsCurrentMonth)
		assert.True(t, aug31.IsPastDate)

		today := byDate["2026-09-15"]
		assert.True(t, today.IsToday)
		assert.True(t, today.IsCurrentMonth)
		assert.False(t, today.IsPastDate)

		sel := byDate["2026-09-16"]
		assert.True(t, sel.IsSelected)
		assert.True(t, sel.HasAppointments)
		assert.Equal(t, 3, sel.AppointmentCount)

		saturday := byDate["2026-09-19"]
		assert.False(t, saturday.IsWorkingDay)

		// Absent date means zero bookings
		empty := byDate["2026-09-17"]
		assert.False(t, empty.HasAppointments)
		assert.Zero(t, empty.AppointmentCount)
	})

	t.Run("no selected date", func(t *testing.T) {
		days := buildDays(testSchedule(), month, gridStart, gridEnd, nil, nil, testNow)
		for _, d := range days {
			assert.False(t, d.IsSelected)
		}
	})
}
