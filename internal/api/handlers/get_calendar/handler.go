package get_calendar

import (
	"errors"
	"net/http"

	"github.com/KKKircheff/GTP-BookingService/internal/api/handlers"
	getCalendar "github.com/KKKircheff/GTP-BookingService/internal/usecase/get_calendar"
)

const (
	msgMissingMonth    = "месяц обязателен"
	msgInvalidMonth    = "некорректный формат месяца, ожидается YYYY-MM"
	msgInvalidSelected = "некорректный формат выбранной даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: month (required, YYYY-MM), selected (optional, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем month из query параметров
	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		h.logger.Warn("GET /calendar - Missing month")
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	selectedStr := r.URL.Query().Get("selected")

	// Формируем запрос к use case (с парсингом месяца и выбранной даты)
	useCaseReq, err := ToUseCaseRequest(monthStr, selectedStr)
	if err != nil {
		if selectedStr != "" {
			h.logger.Warn("GET /calendar - Invalid parameters: month=%s, selected=%s, error=%v",
				monthStr, selectedStr, err)
			handlers.RespondBadRequest(w, msgInvalidSelected)
		} else {
			h.logger.Warn("GET /calendar - Invalid month format: month=%s, error=%v", monthStr, err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: month=%s", monthStr)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar - Failed to build calendar: month=%s, error=%v", monthStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /calendar - Calendar built successfully: month=%s, days_count=%d",
		monthStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
