package get_calendar

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

// Request модель запроса календаря на месяц
type Request struct {
	Month        time.Time  // Первый день запрашиваемого месяца
	SelectedDate *time.Time // Выбранная в UI дата (опционально)
}

// Response модель ответа с сеткой календаря
type Response struct {
	Month time.Time // Запрошенный месяц
	Days  []domain.CalendarDay // Полные недели с понедельника, покрывающие месяц
}
