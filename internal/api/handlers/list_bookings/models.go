package list_bookings

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	"github.com/KKKircheff/GTP-BookingService/internal/service/bookings/models"
)

// ToServiceRequest конвертирует query параметры в модель сервиса.
// Пустые значения не попадают в фильтр.
func ToServiceRequest(fromStr, toStr, statusStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
