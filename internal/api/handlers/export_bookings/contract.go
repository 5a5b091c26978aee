package export_bookings

import (
	"context"
	"time"
)

type BookingService interface {
	ExportToExcel(ctx context.Context, startDate, endDate time.Time) ([]byte, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
