package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	"github.com/KKKircheff/GTP-BookingService/pkg/types"
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

func TestGenerateSlotTimes(t *testing.T) {
	t.Run("standard day produces 18 slots", func(t *testing.T) {
		futureDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC) // Wednesday

		slots, err := generateSlotTimes(testSchedule(), futureDate, testNow)
		require.NoError(t, err)

		require.Len(t, slots, 18)
		assert.Equal(t, types.TimeString("08:30"), slots[0])
		assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
	})

	t.Run("uneven tail is dropped", func(t *testing.T) {
		schedule := testSchedule()
		schedule.BusinessEnd = "17:45" // 17:30 slot would end 18:00, past the tail

		futureDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

		slots, err := generateSlotTimes(schedule, futureDate, testNow)
		require.NoError(t, err)
		assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
		assert.NotContains(t, slots, types.TimeString("17:30"))
	})

	t.Run("non-working day is empty", func(t *testing.T) {
		saturday := time.Date(2026, 9, 19, 0, 0, 0, 0, time.UTC)

		slots, err := generateSlotTimes(testSchedule(), saturday, testNow)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("past date is empty", func(t *testing.T) {
		monday := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

		slots, err := generateSlotTimes(testSchedule(), monday, testNow)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("slots are ascending with fixed spacing and no duplicates", func(t *testing.T) {
		futureDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

		slots, err := generateSlotTimes(testSchedule(), futureDate, testNow)
		require.NoError(t, err)

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].IsBefore(slots[i]))

			prev, err := slots[i-1].Minutes()
			require.NoError(t, err)
			cur, err := slots[i].Minutes()
			require.NoError(t, err)
			assert.Equal(t, 30, cur-prev)
		}
	})

	t.Run("deterministic for same inputs", func(t *testing.T) {
		futureDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

		first, err := generateSlotTimes(testSchedule(), futureDate, testNow)
		require.NoError(t, err)
		second, err := generateSlotTimes(testSchedule(), futureDate, testNow)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestResolveAvailability(t *testing.T) {
	futureDate := time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC)

	mustSlots := func(t *testing.T, date time.Time) []types.TimeString {
		t.Helper()
		slots, err := generateSlotTimes(testSchedule(), date, testNow)
		require.NoError(t, err)
		return slots
	}

	t.Run("booked slot is unavailable and carries the booking reference", func(t *testing.T) {
		bookings := []*domain.Booking{
			{ID: "b-1", AppointmentTime: "10:30", Status: domain.StatusConfirmed},
		}

		slots := resolveAvailability(mustSlots(t, futureDate), bookings, futureDate, testNow)

		for _, s := range slots {
			if s.StartTime == "10:30" {
				assert.False(t, s.Available)
				assert.True(t, s.IsBooked())
				require.NotNil(t, s.BookingID)
				assert.Equal(t, "b-1", *s.BookingID)
			} else {
				assert.True(t, s.Available, "slot %s", s.StartTime)
				assert.False(t, s.IsBooked(), "slot %s", s.StartTime)
			}
		}
	})

	t.Run("today past slots are unavailable without a booking reference", func(t *testing.T) {
		today := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

		slots := resolveAvailability(mustSlots(t, today), nil, today, testNow)

		for _, s := range slots {
			// now is 10:00, slot starting exactly at 10:00 is already gone
			if !s.StartTime.IsAfter("10:00") {
				assert.False(t, s.Available, "slot %s", s.StartTime)
				assert.Nil(t, s.BookingID, "slot %s", s.StartTime)
			} else {
				assert.True(t, s.Available, "slot %s", s.StartTime)
			}
		}
	})

	t.Run("result is sorted regardless of booking order", func(t *testing.T) {
		bookings := []*domain.Booking{
			{ID: "b-2", AppointmentTime: "15:00", Status: domain.StatusConfirmed},
			{ID: "b-1", AppointmentTime: "09:00", Status: domain.StatusConfirmed},
		}

		slots := resolveAvailability(mustSlots(t, futureDate), bookings, futureDate, testNow)

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].StartTime.IsBefore(slots[i].StartTime))
		}
	})

	t.Run("non-confirmed bookings do not block slots", func(t *testing.T) {
		bookings := []*domain.Booking{
			{ID: "b-1", AppointmentTime: "10:30", Status: domain.StatusCancelled},
			{ID: "b-2", AppointmentTime: "11:00", Status: domain.StatusCompleted},
		}

		slots := resolveAvailability(mustSlots(t, futureDate), bookings, futureDate, testNow)

		for _, s := range slots {
			assert.True(t, s.Available, "slot %s", s.StartTime)
		}
	})
}
