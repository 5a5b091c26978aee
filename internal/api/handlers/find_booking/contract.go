package find_booking

import (
	"context"

	"github.com/KKKircheff/GTP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByConfirmationNumber(ctx context.Context, number string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
