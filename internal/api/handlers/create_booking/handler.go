package create_booking

import (
	"errors"
	"net/http"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers"
	createBooking "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgTenantNotFound      = "мечеть не найдена"
	msgBookingTypeNotFound = "тип бронирования не найден"
	msgDateUnavailable     = "выбранная дата недоступна для бронирования"
	msgInvalidTimeSlot     = "некорректный временной слот"
	msgSlotNotAvailable    = "выбранный временной слот уже занят"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Нарушения формы - не сбой: отдаются клиенту все разом, по полям
		var validationErr *createBooking.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("POST /bookings - Form validation failed: tenant=%s, %d field(s)",
				req.TenantSlug, len(validationErr.Fields))
			handlers.RespondValidationErrors(w, validationErr.Fields)
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: tenant=%s, date=%s, time=%s-%s",
				req.TenantSlug, req.BookingDate, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrTenantNotFound):
			h.logger.Warn("POST /bookings - Tenant not found: tenant=%s", req.TenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, createBooking.ErrBookingTypeNotFound):
			h.logger.Warn("POST /bookings - Booking type not found: tenant=%s, bookingType=%s",
				req.TenantSlug, req.BookingTypeSlug)
			handlers.RespondNotFound(w, msgBookingTypeNotFound)

		case errors.Is(err, createBooking.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: tenant=%s, date=%s", req.TenantSlug, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateUnavailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: tenant=%s, date=%s, time=%s-%s",
				req.TenantSlug, req.BookingDate, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: tenant=%s: %v", req.TenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: tenant=%s, error=%v", req.TenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, tenant=%s",
		result.ID, result.Reference, req.TenantSlug)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
