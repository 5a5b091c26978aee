package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	bookingRepo "github.com/KKKircheff/GTP-BookingService/internal/infra/storage/booking"
	"github.com/KKKircheff/GTP-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями:
// поиск, отмена, завершение, списки для админки
type Service struct {
	bookingRepo    BookingRepository
	occupancyCache OccupancyCache
	logger         Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	occupancyCache OccupancyCache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		occupancyCache: occupancyCache,
		logger:         logger,
	}
}

// GetByID получает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByConfirmationNumber получает бронирование по клиентскому номеру
// подтверждения (лукап для клиента, не первичный ключ)
func (s *Service) GetByConfirmationNumber(ctx context.Context, number string) (*models.BookingResponse, error) {
	if number == "" {
		return nil, fmt.Errorf("%w: confirmation number is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByConfirmationNumber(ctx, number)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByConfirmationNumber: %s not found", number)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByConfirmationNumber: repository error for %s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByConfirmationNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по периоду и статусу (админка)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет подтверждённое бронирование с указанием причины.
// confirmed -> cancelled терминальный переход; освободившийся слот
// снова виден резолверу доступности.
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	reason := req.Reason
	if len(reason) > domain.MaxCancellationReasonLength {
		reason = reason[:domain.MaxCancellationReasonLength]
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел измениться между чтением и обновлением
			s.logger.Warn("Cancel: booking id=%s not cancellable anymore", bookingID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Отмена меняет занятость даты
	if err := s.occupancyCache.InvalidateDate(ctx, booking.AppointmentDate); err != nil {
		s.logger.Warn("Cancel: failed to invalidate occupancy cache: %v", err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", bookingID)
	return nil
}

// Complete переводит бронирование в статус completed (операция бэк-офиса)
func (s *Service) Complete(ctx context.Context, bookingID string) error {
	s.logger.Info("Complete: completing booking id=%s", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Complete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%s cannot be completed, status=%s", bookingID, booking.Status)
		return ErrCannotComplete
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Complete: booking id=%s not completable anymore", bookingID)
			return ErrCannotComplete
		}
		s.logger.Error("Complete: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	// Завершённые бронирования не считаются в занятости
	if err := s.occupancyCache.InvalidateDate(ctx, booking.AppointmentDate); err != nil {
		s.logger.Warn("Complete: failed to invalidate occupancy cache: %v", err)
	}

	s.logger.Info("Complete: booking id=%s completed", bookingID)
	return nil
}
