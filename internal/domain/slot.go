package domain

import "github.com/KKKircheff/GTP-BookingService/pkg/types"

// TimeSlot represents a single bookable opportunity within business hours.
// Slots are derived on demand and never persisted.
type TimeSlot struct {
	StartTime types.TimeString
	Available bool
	// BookingID references the blocking booking when the slot is taken.
	// A slot unavailable only because it is already in the past carries no reference.
	BookingID *string
}

// IsBooked returns true if the slot is blocked by a confirmed booking
func (s *TimeSlot) IsBooked() bool {
	return s.BookingID != nil
}
