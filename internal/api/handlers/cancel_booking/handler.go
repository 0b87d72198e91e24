package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/middleware"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	bookingsService "github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookings"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgReasonTooLong      = "причина отмены не должна превышать 500 символов"
	msgBookingNotFound    = "бронирование не найдено"
	msgCannotCancel       = "бронирование не может быть отменено"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	staffID, _ := middleware.StaffIDFromContext(r.Context())

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if utf8.RuneCountInString(req.CancellationReason) > domain.MaxCancellationReasonLength {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Reason too long: booking_id=%d", bookingID)
		handlers.RespondBadRequest(w, msgReasonTooLong)
		return
	}

	err = h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{
		StaffID:            staffID,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, staff_id=%d", bookingID, staffID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": string(domain.StatusCancelled)})
}
