package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	bookingRepo "github.com/KKKircheff/GTP-BookingService/internal/infra/storage/booking"
)

// UseCase use case создания бронирования техосмотра
type UseCase struct {
	bookingRepo    BookingRepository
	txManager      TransactionManager
	occupancyCache OccupancyCache
	schedule       domain.ScheduleConfig
	priceTable     domain.PriceTable
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	occupancyCache OccupancyCache,
	schedule domain.ScheduleConfig,
	priceTable domain.PriceTable,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		txManager:      txManager,
		occupancyCache: occupancyCache,
		schedule:       schedule,
		priceTable:     priceTable,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка доступности и вставка выполняются в сериализуемой транзакции;
// последняя линия защиты от двойного бронирования - частичный уникальный
// индекс на (appointment_date, appointment_time, status = 'confirmed').
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: plate=%s, type=%s, date=%s, time=%s",
		req.LicensePlate, req.VehicleType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация и нормализация входных данных (без обращений к БД)
	input, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Единый снимок текущего времени
	now := uc.timeProvider.Now()

	// 3. Валидация даты и времени относительно расписания
	if err := validateDate(uc.schedule, req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateStartTime(uc.schedule, req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateBooking: time validation failed: %v", err)
		return nil, err
	}

	// 4. Цена по таблице цен с учётом онлайн-скидки
	price, err := uc.priceTable.PriceFor(input.VehicleType, req.IsOnlineBooking)
	if err != nil {
		uc.logger.Error("CreateBooking: pricing failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. ID и номер подтверждения генерируются до вставки:
	// номер детерминированно выводится из даты и хвоста ID
	bookingID := uuid.NewString()
	confirmationNumber := domain.ConfirmationNumber(req.Date, bookingID)

	booking := &domain.Booking{
		ID:                 bookingID,
		ConfirmationNumber: confirmationNumber,
		CustomerName:       req.CustomerName,
		Phone:              req.Phone,
		Email:              req.Email,
		LicensePlate:       input.NormalizedPlate,
		VehicleType:        input.VehicleType,
		VehicleBrand:       req.VehicleBrand,
		IsFourWheelDrive:   req.IsFourWheelDrive,
		AppointmentDate:    domain.TruncateToDay(req.Date),
		AppointmentTime:    req.StartTime,
		Price:              price,
		IsOnlineBooking:    req.IsOnlineBooking,
		Status:             domain.StatusConfirmed,
		Notes:              req.Notes,
	}

	var created *domain.Booking

	// 6. Проверка доступности и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Повторная проверка на commit-time: закрывает окно между
		// последним чтением доступности в UI и отправкой формы
		taken, err := uc.bookingRepo.ExistsConfirmed(txCtx, req.Date, req.StartTime.String())
		if err != nil {
			uc.logger.Error("CreateBooking: availability check failed: %v", err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if taken {
			return ErrSlotNotAvailable
		}

		// 6.2. Вставка; уникальный индекс добивает гонку, которую не видно на чтении
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken",
				req.Date.Format(domain.DateFormat), req.StartTime)
		}
		return nil, err
	}

	// 7. Инвалидация кеша занятости - best effort, бронирование уже создано
	if err := uc.occupancyCache.InvalidateDate(ctx, req.Date); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate occupancy cache: %v", err)
	}

	uc.logger.Info("CreateBooking: created booking id=%s, confirmation=%s, price=%d",
		created.ID, created.ConfirmationNumber, created.Price)

	return &Response{
		ID:                 created.ID,
		ConfirmationNumber: created.ConfirmationNumber,
		AppointmentDate:    created.AppointmentDate,
		AppointmentTime:    created.AppointmentTime,
		LicensePlate:       created.LicensePlate,
		VehicleType:        string(created.VehicleType),
		Price:              created.Price,
		Status:             string(created.Status),
		CreatedAt:          created.CreatedAt,
	}, nil
}
