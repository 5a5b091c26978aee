package find_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/KKKircheff/GTP-BookingService/internal/api/handlers"
	"github.com/KKKircheff/GTP-BookingService/internal/service/bookings"
)

const (
	msgMissingNumber = "номер подтверждения обязателен"
	msgNotFound      = "бронирование не найдено"
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

// Handle GET /api/v1/bookings/confirmation/{number}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем номер подтверждения из URL
	vars := mux.Vars(r)
	number := strings.ToUpper(strings.TrimSpace(vars["number"]))
	if number == "" {
		h.logger.Warn("GET /bookings/confirmation/{number} - Missing confirmation number")
		handlers.RespondBadRequest(w, msgMissingNumber)
		return
	}

	// Ищем бронирование по номеру подтверждения
	booking, err := h.service.GetByConfirmationNumber(r.Context(), number)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/confirmation/{number} - Booking not found: number=%s", number)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings/confirmation/{number} - Failed to find booking: number=%s, error=%v",
				number, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/confirmation/{number} - Booking found: number=%s, booking_id=%s",
		number, booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
