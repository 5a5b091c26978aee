package create_booking

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	createBooking "github.com/KKKircheff/GTP-BookingService/internal/usecase/create_booking"
	"github.com/KKKircheff/GTP-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName     string  `json:"customerName"`
	Phone            string  `json:"phone"`
	Email            *string `json:"email,omitempty"`
	LicensePlate     string  `json:"licensePlate"`
	VehicleType      string  `json:"vehicleType"`
	VehicleBrand     *string `json:"vehicleBrand,omitempty"`
	IsFourWheelDrive bool    `json:"isFourWheelDrive"`
	AppointmentDate  string  `json:"appointmentDate"` // "2026-09-15"
	AppointmentTime  string  `json:"appointmentTime"` // "10:30"
	IsOnlineBooking  bool    `json:"isOnlineBooking"`
	Notes            *string `json:"notes,omitempty"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	ID                 string `json:"id"`
	ConfirmationNumber string `json:"confirmationNumber"`
	AppointmentDate    string `json:"appointmentDate"`
	AppointmentTime    string `json:"appointmentTime"`
	LicensePlate       string `json:"licensePlate"`
	VehicleType        string `json:"vehicleType"`
	Price              int    `json:"price"`
	Status             string `json:"status"`
	CreatedAt          string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.AppointmentDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.AppointmentTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerName:     r.CustomerName,
		Phone:            r.Phone,
		Email:            r.Email,
		LicensePlate:     r.LicensePlate,
		VehicleType:      r.VehicleType,
		VehicleBrand:     r.VehicleBrand,
		IsFourWheelDrive: r.IsFourWheelDrive,
		Date:             date,
		StartTime:        startTime,
		IsOnlineBooking:  r.IsOnlineBooking,
		Notes:            r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ID:                 resp.ID,
		ConfirmationNumber: resp.ConfirmationNumber,
		AppointmentDate:    resp.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime:    resp.AppointmentTime.String(),
		LicensePlate:       resp.LicensePlate,
		VehicleType:        resp.VehicleType,
		Price:              resp.Price,
		Status:             resp.Status,
		CreatedAt:          resp.CreatedAt.Format(time.RFC3339),
	}
}
