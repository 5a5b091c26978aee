package export_bookings

import (
	"fmt"
	"net/http"
	"time"

	"github.com/KKKircheff/GTP-BookingService/internal/api/handlers"
	"github.com/KKKircheff/GTP-BookingService/internal/domain"
)

const (
	msgMissingDates  = "параметры from и to обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "дата from должна быть не позже даты to"
)

// xlsxContentType MIME тип для .xlsx файлов
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

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

// Handle GET /api/v1/admin/bookings/export
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /admin/bookings/export - Missing period: from=%s, to=%s", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/export - Invalid from date: from=%s, error=%v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/export - Invalid to date: to=%s, error=%v", toStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if from.After(to) {
		h.logger.Warn("GET /admin/bookings/export - Invalid period: from=%s, to=%s", fromStr, toStr)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	// Генерируем выгрузку
	content, fileName, err := h.service.ExportToExcel(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /admin/bookings/export - Failed to export: from=%s, to=%s, error=%v",
			fromStr, toStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings/export - Export generated: file=%s, size=%d", fileName, len(content))

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
