package domain

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/pkg/types"
)

// BookingStatus represents the status of an inspection booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents an inspection appointment in the system
type Booking struct {
	ID                 string // UUID
	ConfirmationNumber string

	CustomerName string
	Phone        string
	Email        *string

	LicensePlate     string // normalized: uppercase, alphanumeric only
	VehicleType      VehicleType
	VehicleBrand     *string
	IsFourWheelDrive bool

	AppointmentDate time.Time        // calendar day, no time component
	AppointmentTime types.TimeString // slot start, aligned to the slot grid

	Price           int // лв., derived from the price table at commit time
	IsOnlineBooking bool

	Status             BookingStatus
	CancellationReason *string
	CancelledAt        *time.Time

	Notes *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking still occupies its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can transition to cancelled.
// Cancelled and completed are terminal states.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeCompleted returns true if the booking can transition to completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// BookingsFilter filters admin booking listings
type BookingsFilter struct {
	StartDate *time.Time     // inclusive, nil = unbounded
	EndDate   *time.Time     // inclusive, nil = unbounded
	Status    *BookingStatus // nil = all statuses
}
