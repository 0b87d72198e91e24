package get_booking_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers"
	bookingTypesService "github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookingtypes"
)

const (
	msgTenantNotFound      = "мечеть не найдена"
	msgBookingTypeNotFound = "тип бронирования не найден"
)

type Handler struct {
	service BookingTypesService
	logger  Logger
}

func NewHandler(service BookingTypesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tenants/{tenantSlug}/booking-types/{bookingTypeSlug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantSlug := vars["tenantSlug"]
	bookingTypeSlug := vars["bookingTypeSlug"]

	result, err := h.service.GetBySlug(r.Context(), tenantSlug, bookingTypeSlug)
	if err != nil {
		h.respondError(w, err, tenantSlug, bookingTypeSlug)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/tenants/{tenantSlug}/booking-types
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]

	result, err := h.service.GetAllByTenant(r.Context(), tenantSlug)
	if err != nil {
		h.respondError(w, err, tenantSlug, "")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, err error, tenantSlug, bookingTypeSlug string) {
	switch {
	case errors.Is(err, bookingTypesService.ErrTenantNotFound):
		h.logger.Warn("GET /booking-types - Tenant not found: tenant=%s", tenantSlug)
		handlers.RespondNotFound(w, msgTenantNotFound)

	case errors.Is(err, bookingTypesService.ErrBookingTypeNotFound):
		h.logger.Warn("GET /booking-types - Booking type not found: tenant=%s, bookingType=%s", tenantSlug, bookingTypeSlug)
		handlers.RespondNotFound(w, msgBookingTypeNotFound)

	default:
		h.logger.Error("GET /booking-types - Failed: tenant=%s, error=%v", tenantSlug, err)
		handlers.RespondInternalError(w)
	}
}
