package get_available_slots

import (
	"sort"
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	"github.com/KKKircheff/GTP-BookingService/pkg/types"
)

// generateSlotTimes генерирует сетку слотов на день.
// Слоты идут с начала рабочего дня с фиксированным шагом; слот попадает
// в сетку, только если целиком помещается до закрытия (полуоткрытый
// интервал, некратный остаток отбрасывается).
// Для нерабочих и прошедших дат сетка пустая.
func generateSlotTimes(
	schedule domain.ScheduleConfig,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	if !schedule.IsBookableDate(requestDate, now) {
		return []types.TimeString{}, nil
	}

	slots := make([]types.TimeString, 0)
	currentSlot := schedule.BusinessStart

	for currentSlot.IsBefore(schedule.BusinessEnd) {
		slotEnd, err := currentSlot.AddMinutes(schedule.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(schedule.BusinessEnd) {
			break
		}

		slots = append(slots, currentSlot)
		currentSlot = slotEnd
	}

	return slots, nil
}

// resolveAvailability размечает сетку слотов по занятости.
//
// Слот недоступен, если:
//   - на его время есть подтверждённое бронирование - тогда слот несёт
//     ссылку на блокирующее бронирование;
//   - дата - сегодня и начало слота уже наступило (нестрогое сравнение:
//     начало <= now) - тогда ссылки нет.
//
// Результат всегда отсортирован по возрастанию времени независимо от
// порядка бронирований на входе и детерминирован для одинаковых
// (входы, now).
func resolveAvailability(
	slotTimes []types.TimeString,
	bookings []*domain.Booking,
	requestDate time.Time,
	now time.Time,
) []domain.TimeSlot {
	bookedBy := make(map[types.TimeString]string, len(bookings))
	for _, booking := range bookings {
		if booking.IsConfirmed() {
			bookedBy[booking.AppointmentTime] = booking.ID
		}
	}

	isToday := domain.IsSameDay(requestDate, now)
	nowTime := types.NewTimeString(now)

	slots := make([]domain.TimeSlot, 0, len(slotTimes))
	for _, startTime := range slotTimes {
		slot := domain.TimeSlot{StartTime: startTime, Available: true}

		if id, taken := bookedBy[startTime]; taken {
			blocking := id
			slot.Available = false
			slot.BookingID = &blocking
		} else if isToday && !startTime.IsAfter(nowTime) {
			slot.Available = false
		}

		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.IsBefore(slots[j].StartTime)
	})

	return slots
}
