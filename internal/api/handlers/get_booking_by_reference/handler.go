package get_booking_by_reference

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers"
	bookingsService "github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookings"
)

const (
	msgInvalidReference = "некорректный номер бронирования"
	msgBookingNotFound  = "бронирование не найдено"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/reference/{reference}
// Публичный просмотр бронирования по UUID из письма-подтверждения
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]
	if _, err := uuid.Parse(reference); err != nil {
		h.logger.Warn("GET /bookings/reference/{reference} - Invalid reference: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReference)
		return
	}

	result, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/reference/{reference} - Booking not found: reference=%s", reference)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/reference/{reference} - Failed: reference=%s, error=%v", reference, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
