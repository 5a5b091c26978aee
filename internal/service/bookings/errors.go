package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrCannotCancel возвращается при попытке отменить бронирование
	// в терминальном статусе (cancelled, completed)
	ErrCannotCancel = errors.New("bookings.service: booking cannot be cancelled")

	// ErrCannotComplete возвращается при попытке завершить бронирование
	// в терминальном статусе
	ErrCannotComplete = errors.New("bookings.service: booking cannot be completed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
