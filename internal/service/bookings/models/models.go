package models

import (
	"fmt"
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

// BookingResponse полная модель бронирования для ответов сервиса
type BookingResponse struct {
	ID                 string     `json:"id"`
	ConfirmationNumber string     `json:"confirmationNumber"`
	CustomerName       string     `json:"customerName"`
	Phone              string     `json:"phone"`
	Email              *string    `json:"email,omitempty"`
	LicensePlate       string     `json:"licensePlate"`
	VehicleType        string     `json:"vehicleType"`
	VehicleBrand       *string    `json:"vehicleBrand,omitempty"`
	IsFourWheelDrive   bool       `json:"isFourWheelDrive"`
	AppointmentDate    time.Time  `json:"appointmentDate"`
	AppointmentTime    string     `json:"appointmentTime"`
	Price              int        `json:"price"`
	IsOnlineBooking    bool       `json:"isOnlineBooking"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason string `json:"reason"` // Причина отмены (опционально, обрезается по лимиту домена)
}

// ListBookingsRequest запрос на список бронирований для админки
type ListBookingsRequest struct {
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Status    *string    `json:"status,omitempty"`
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.BookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return domain.BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status %q", s)
	}
}

// FromDomainBooking конвертирует доменную модель в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		ConfirmationNumber: b.ConfirmationNumber,
		CustomerName:       b.CustomerName,
		Phone:              b.Phone,
		Email:              b.Email,
		LicensePlate:       b.LicensePlate,
		VehicleType:        string(b.VehicleType),
		VehicleBrand:       b.VehicleBrand,
		IsFourWheelDrive:   b.IsFourWheelDrive,
		AppointmentDate:    b.AppointmentDate,
		AppointmentTime:    b.AppointmentTime.String(),
		Price:              b.Price,
		IsOnlineBooking:    b.IsOnlineBooking,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		Notes:              b.Notes,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
