package get_calendar

import (
	"context"
	"fmt"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

// UseCase use case построения календаря бронирований на месяц
type UseCase struct {
	bookingRepo  BookingRepository
	cache        OccupancyCache
	schedule     domain.ScheduleConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cache OccupancyCache,
	schedule domain.ScheduleConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cache:        cache,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит сетку календаря на месяц с флагами классификации дат
// и количеством подтверждённых бронирований по датам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month.IsZero() {
		uc.logger.Warn("GetCalendar: month is required")
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	gridStart, gridEnd := monthGridRange(req.Month)

	// Занятость месяца берём из кеша; промах или ошибка - пересчёт из БД.
	// Ключ кеша - месяц, поэтому краевые дни соседних месяцев могут
	// отставать на TTL после инвалидации - это допустимо для индикаторов.
	counts, err := uc.cache.Get(ctx, req.Month)
	if err != nil {
		uc.logger.Warn("GetCalendar: occupancy cache get failed: %v", err)
		counts = nil
	}

	if counts == nil {
		counts, err = uc.bookingRepo.CountConfirmedByDateRange(ctx, gridStart, gridEnd)
		if err != nil {
			uc.logger.Error("GetCalendar: failed to count bookings for %s: %v",
				req.Month.Format(domain.MonthFormat), err)
			return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}

		if err := uc.cache.Set(ctx, req.Month, counts); err != nil {
			uc.logger.Warn("GetCalendar: occupancy cache set failed: %v", err)
		}
	}

	days := buildDays(uc.schedule, req.Month, gridStart, gridEnd, counts, req.SelectedDate, now)

	uc.logger.Info("GetCalendar: month=%s, days=%d, dates_with_bookings=%d",
		req.Month.Format(domain.MonthFormat), len(days), len(counts))

	return &Response{
		Month: req.Month,
		Days:  days,
	}, nil
}
