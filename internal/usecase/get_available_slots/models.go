package get_available_slots

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со слотами на дату
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	IsBookable      bool      // Является ли дата рабочей и не прошедшей
	DurationMinutes int       // Длительность слота в минутах
	Slots           []domain.TimeSlot // Слоты в порядке возрастания времени
}
