package domain

import "time"

// Defaults for the schedule configuration
const (
	DefaultBusinessStart       = "08:30"
	DefaultBusinessEnd         = "17:30"
	DefaultSlotDurationMinutes = 30
	DefaultMaxAdvanceWeeks     = 8 // 0 = unlimited
)

// DefaultWorkingDays Monday..Friday (time.Weekday, Sunday = 0)
var DefaultWorkingDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// Business validation constants
const (
	MinSlotDurationMinutes      = 10
	MaxSlotDurationMinutes      = 120
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxCustomerNameLength       = 100
)

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	DateFormat        = "2006-01-02" // YYYY-MM-DD
	MonthFormat       = "2006-01"    // YYYY-MM
	CompactDateFormat = "20060102"   // for confirmation numbers
)
