package get_calendar

import (
	"context"
	"time"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// CountConfirmedByDateRange считает подтверждённые бронирования по датам
	// в диапазоне [startDate, endDate] включительно; даты без бронирований
	// в результате отсутствуют
	CountConfirmedByDateRange(ctx context.Context, startDate, endDate time.Time) (map[string]int, error)
}

// OccupancyCache интерфейс кеша занятости календаря
type OccupancyCache interface {
	Get(ctx context.Context, month time.Time) (map[string]int, error)
	Set(ctx context.Context, month time.Time, counts map[string]int) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
