package get_calendar

import (
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/domain"
	getCalendar "github.com/KKKircheff/GTP-BookingService/internal/usecase/get_calendar"
)

// CalendarDayResponse HTTP модель ячейки календаря
type CalendarDayResponse struct {
	Date             string `json:"date"`
	IsCurrentMonth   bool   `json:"isCurrentMonth"`
	IsToday          bool   `json:"isToday"`
	IsSelected       bool   `json:"isSelected"`
	IsWorkingDay     bool   `json:"isWorkingDay"`
	IsPastDate       bool   `json:"isPastDate"`
	HasAppointments  bool   `json:"hasAppointments"`
	AppointmentCount int    `json:"appointmentCount"`
}

// CalendarResponse HTTP модель ответа с сеткой календаря
type CalendarResponse struct {
	Month string                `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(monthStr, selectedStr string) (*getCalendar.Request, error) {
	month, err := time.Parse(domain.MonthFormat, monthStr)
	if err != nil {
		return nil, err
	}

	req := &getCalendar.Request{Month: month}

	if selectedStr != "" {
		selected, err := time.Parse(domain.DateFormat, selectedStr)
		if err != nil {
			return nil, err
		}
		req.SelectedDate = &selected
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, CalendarDayResponse{
			Date:             d.Date.Format(domain.DateFormat),
			IsCurrentMonth:   d.IsCurrentMonth,
			IsToday:          d.IsToday,
			IsSelected:       d.IsSelected,
			IsWorkingDay:     d.IsWorkingDay,
			IsPastDate:       d.IsPastDate,
			HasAppointments:  d.HasAppointments,
			AppointmentCount: d.AppointmentCount,
		})
	}
	return &CalendarResponse{
		Month: resp.Month.Format(domain.MonthFormat),
		Days:  days,
	}
}
