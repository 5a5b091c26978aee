package get_calendar

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

// monthGridRange возвращает границы сетки календаря: от понедельника недели,
// в которую попадает первое число месяца, до воскресенья недели последнего числа
func monthGridRange(month time.Time) (time.Time, time.Time) {
	firstOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := firstOfMonth.AddDate(0, 0, -mondayOffset(firstOfMonth))
	gridEnd := lastOfMonth.AddDate(0, 0, 6-mondayOffset(lastOfMonth))

	return gridStart, gridEnd
}

// mondayOffset количество дней от понедельника недели до даты
func mondayOffset(date time.Time) int {
	// time.Weekday: Sunday = 0, календарь начинается с понедельника
	return (int(date.Weekday()) + 6) % 7
}

// buildDays собирает ячейки сетки с флагами классификации дат и занятостью.
// Отсутствие даты в counts означает ноль бронирований.
func buildDays(
	schedule domain.ScheduleConfig,
	month time.Time,
	gridStart, gridEnd time.Time,
	counts map[string]int,
	selectedDate *time.Time,
	now time.Time,
) []domain.CalendarDay {
	days := make([]domain.CalendarDay, 0, 42)

	for date := gridStart; !date.After(gridEnd); date = date.AddDate(0, 0, 1) {
		count := counts[domain.DateKey(date)]

		days = append(days, domain.CalendarDay{
			Date:             date,
			IsCurrentMonth:   date.Month() == month.Month() && date.Year() == month.Year(),
			IsToday:          domain.IsSameDay(date, now),
			IsSelected:       selectedDate != nil && domain.IsSameDay(date, *selectedDate),
			IsWorkingDay:     schedule.IsWorkingDay(date),
			IsPastDate:       domain.IsPastDate(date, now),
			HasAppointments:  count > 0,
			AppointmentCount: count,
		})
	}

	return days
}
