package get_tenant_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/api/handlers"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	bookingsService "github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookings"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidFromDate = "некорректный параметр from, ожидается YYYY-MM-DD"
	msgInvalidToDate   = "некорректный параметр to, ожидается YYYY-MM-DD"
	msgTenantNotFound  = "мечеть не найдена"
	msgInvalidStatus   = "некорректный статус бронирования"
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

// Handle GET /api/v1/tenants/{tenantSlug}/bookings?from=&to=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantSlug := mux.Vars(r)["tenantSlug"]
	query := r.URL.Query()

	req := &models.GetTenantBookingsRequest{
		TenantSlug:      tenantSlug,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /tenants/{slug}/bookings - Invalid from date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidFromDate)
			return
		}
		req.StartDate = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /tenants/{slug}/bookings - Invalid to date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidToDate)
			return
		}
		req.EndDate = &to
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	result, err := h.service.GetTenantBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrTenantNotFound):
			h.logger.Warn("GET /tenants/{slug}/bookings - Tenant not found: tenant=%s", tenantSlug)
			handlers.RespondNotFound(w, msgTenantNotFound)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /tenants/{slug}/bookings - Invalid status: tenant=%s: %v", tenantSlug, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /tenants/{slug}/bookings - Failed: tenant=%s, error=%v", tenantSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
