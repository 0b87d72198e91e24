package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers"
	getCalendar "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/get_calendar"
)

const (
	msgInvalidYear         = "некорректный параметр year"
	msgInvalidMonth        = "некорректный параметр month, ожидается 1-12"
	msgTenantNotFound      = "мечеть не найдена"
	msgBookingTypeNotFound = "тип бронирования не найден"
	msgInvalidInput        = "некорректные параметры запроса"
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

// Handle GET /api/v1/tenants/{tenantSlug}/booking-types/{bookingTypeSlug}/calendar?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantSlug := vars["tenantSlug"]
	bookingTypeSlug := vars["bookingTypeSlug"]

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		TenantSlug:      tenantSlug,
		BookingTypeSlug: bookingTypeSlug,
		Year:            year,
		Month:           month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrTenantNotFound):
			h.logger.Warn("GET /calendar - Tenant not found: tenant=%s", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, getCalendar.ErrBookingTypeNotFound):
			h.logger.Warn("GET /calendar - Booking type not found: tenant=%s, bookingType=%s", tenantSlug, bookingTypeSlug)
			handlers.RespondNotFound(w, msgBookingTypeNotFound)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar - Invalid input: tenant=%s, year=%d, month=%d: %v", tenantSlug, year, month, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /calendar - Failed: tenant=%s, bookingType=%s, error=%v", tenantSlug, bookingTypeSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
