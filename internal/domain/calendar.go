package domain

import "time"

// CalendarDay represents one cell of the booking calendar.
// Derived on demand from the schedule and the occupancy counts.
type CalendarDay struct {
	Date             time.Time
	IsCurrentMonth   bool
	IsToday          bool
	IsSelected       bool
	IsWorkingDay     bool
	IsPastDate       bool
	HasAppointments  bool
	AppointmentCount int
}

// DateKey returns the stable sortable key for a calendar date ("2006-01-02")
func DateKey(date time.Time) string {
	return date.Format(DateFormat)
}
