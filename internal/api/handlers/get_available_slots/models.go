package get_available_slots

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	getAvailableSlots "github.com/KKKircheff/GTP-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель временного слота
type SlotResponse struct {
	StartTime string  `json:"startTime"`
	Available bool    `json:"available"`
	BookingID *string `json:"bookingId,omitempty"`
}

// AvailableSlotsResponse HTTP модель ответа со слотами на дату
type AvailableSlotsResponse struct {
	Date            string         `json:"date"`
	IsBookable      bool           `json:"isBookable"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.StartTime.String(),
			Available: s.Available,
			BookingID: s.BookingID,
		})
	}
	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		IsBookable:      resp.IsBookable,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
