package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	getAvailableSlots "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate         = "отсутствует параметр date"
	msgInvalidDateFormat   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgTenantNotFound      = "мечеть не найдена"
	msgBookingTypeNotFound = "тип бронирования не найден"
	msgDateInPast          = "дата не может быть в прошлом"
	msgDateTooFar          = "дата слишком далеко в будущем"
	msgInvalidInput        = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantSlug}/booking-types/{bookingTypeSlug}/available-slots?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantSlug := vars["tenantSlug"]
	bookingTypeSlug := vars["bookingTypeSlug"]

	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /available-slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		TenantSlug:      tenantSlug,
		BookingTypeSlug: bookingTypeSlug,
		Date:            date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTenantNotFound):
			h.logger.Warn("GET /available-slots - Tenant not found: tenant=%s", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getAvailableSlots.ErrBookingTypeNotFound):
			h.logger.Warn("GET /available-slots - Booking type not found: tenant=%s, bookingType=%s", tenantSlug, bookingTypeSlug)
			handlers.RespondNotFound(w, msgBookingTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /available-slots - Date in past: tenant=%s, date=%s", tenantSlug, rawDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /available-slots - Date too far: tenant=%s, date=%s", tenantSlug, rawDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: tenant=%s: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-slots - Failed: tenant=%s, bookingType=%s, error=%v", tenantSlug, bookingTypeSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
