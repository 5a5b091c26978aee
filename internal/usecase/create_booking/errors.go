package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (имя, телефон, номер, тип транспорта). Проверяется до обращения к БД.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается для прошедшей или нерабочей даты
	ErrInvalidDate = errors.New("create_booking: date is not bookable")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время не попадает в сетку слотов
	ErrInvalidTimeSlot = errors.New("create_booking: time is not on the slot grid")

	// ErrTooLateToBook возвращается, когда начало слота сегодня уже наступило
	ErrTooLateToBook = errors.New("create_booking: slot start time has already passed")

	// ErrSlotNotAvailable возвращается, когда слот уже занят подтверждённым
	// бронированием (в том числе проигравшей стороной гонки на commit)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
