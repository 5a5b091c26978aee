package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	"github.com/KKKircheff/GTP-BookingService/pkg/types"
)

// phonePattern телефон после удаления пробелов, скобок и дефисов:
// опциональный "+" и 6-15 цифр
var phonePattern = regexp.MustCompile(`^\+?[0-9]{6,15}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// validatedInput результат валидации запроса: нормализованные поля
type validatedInput struct {
	NormalizedPlate string
	VehicleType     domain.VehicleType
}

// validateRequest валидирует входные данные и нормализует номер.
// Все проверки локальные - до обращения к персистентности.
func validateRequest(req *Request) (*validatedInput, error) {
	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	phone := phoneSeparators.Replace(strings.TrimSpace(req.Phone))
	if !phonePattern.MatchString(phone) {
		return nil, fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	if req.Email != nil && !strings.Contains(*req.Email, "@") {
		return nil, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	plate := domain.NormalizeLicensePlate(req.LicensePlate)
	if err := domain.ValidateLicensePlate(plate); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	vehicleType, err := domain.ParseVehicleType(req.VehicleType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return &validatedInput{
		NormalizedPlate: plate,
		VehicleType:     vehicleType,
	}, nil
}

// validateDate проверяет, что дата рабочая, не прошедшая и внутри горизонта
func validateDate(schedule domain.ScheduleConfig, date, now time.Time) error {
	if !schedule.IsBookableDate(date, now) {
		return ErrInvalidDate
	}
	if schedule.IsBeyondHorizon(date, now) {
		return fmt.Errorf("%w: can only book %d weeks in advance",
			ErrDateTooFarInFuture, schedule.MaxAdvanceWeeks)
	}
	return nil
}

// validateStartTime проверяет, что время попадает в сетку слотов и,
// для сегодняшней даты, что начало слота ещё не наступило
// (правило прошедшего слота: начало <= now означает недоступность).
func validateStartTime(
	schedule domain.ScheduleConfig,
	date time.Time,
	startTime types.TimeString,
	now time.Time,
) error {
	if startTime.IsBefore(schedule.BusinessStart) {
		return fmt.Errorf("%w: before business hours", ErrInvalidTimeSlot)
	}

	slotEnd, err := startTime.AddMinutes(schedule.SlotDurationMinutes)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if slotEnd.IsAfter(schedule.BusinessEnd) {
		return fmt.Errorf("%w: slot does not fit before closing time", ErrInvalidTimeSlot)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	businessStartMinutes, err := schedule.BusinessStart.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if (startMinutes-businessStartMinutes)%schedule.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: not aligned to %d minute grid",
			ErrInvalidTimeSlot, schedule.SlotDurationMinutes)
	}

	if domain.IsSameDay(date, now) && !startTime.IsAfter(types.NewTimeString(now)) {
		return ErrTooLateToBook
	}

	return nil
}
