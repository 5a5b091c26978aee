package get_available_slots

import (
	"context"
	"fmt"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

// UseCase use case получения слотов на дату: генерирует сетку и
// размечает её по подтверждённым бронированиям
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     domain.ScheduleConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	schedule domain.ScheduleConfig,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Единый снимок текущего времени на весь запрос
	now := uc.timeProvider.Now()

	// 3. Генерируем сетку слотов
	slotTimes, err := generateSlotTimes(uc.schedule, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// Нерабочий или прошедший день - слотов нет, в БД не ходим
	if len(slotTimes) == 0 {
		uc.logger.Info("GetAvailableSlots: date %s is not bookable", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			IsBookable:      false,
			DurationMinutes: uc.schedule.SlotDurationMinutes,
			Slots:           []domain.TimeSlot{},
		}, nil
	}

	// 4. Получаем подтверждённые бронирования на дату
	bookings, err := uc.bookingRepo.GetConfirmedByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Размечаем сетку по занятости
	slots := resolveAvailability(slotTimes, bookings, req.Date, now)

	uc.logger.Info("GetAvailableSlots: %d slots for %s (%d booked)",
		len(slots), req.Date.Format(domain.DateFormat), len(bookings))

	return &Response{
		Date:            req.Date,
		IsBookable:      true,
		DurationMinutes: uc.schedule.SlotDurationMinutes,
		Slots:           slots,
	}, nil
}
