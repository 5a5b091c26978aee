package list_bookings

import (
	"errors"
	"net/http"

	"github.com/KKKircheff/GTP-BookingService/internal/api/handlers"
	"github.com/KKKircheff/GTP-BookingService/internal/service/bookings"
)

const (
	msgInvalidDate   = "некорректный формат даты фильтра, ожидается YYYY-MM-DD"
	msgInvalidFilter = "некорректный фильтр бронирований"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: from (optional, YYYY-MM-DD), to (optional, YYYY-MM-DD), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Формируем запрос к сервису (с парсингом дат фильтра)
	serviceReq, err := ToServiceRequest(query.Get("from"), query.Get("to"), query.Get("status"))
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid filter dates: from=%s, to=%s, error=%v",
			query.Get("from"), query.Get("to"), err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Получаем список бронирований
	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: status=%s", query.Get("status"))
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings listed successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
