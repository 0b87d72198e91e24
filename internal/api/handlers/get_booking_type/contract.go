package get_booking_type

import (
	"context"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookingtypes/models"
)

type BookingTypesService interface {
	GetBySlug(ctx context.Context, tenantSlug, bookingTypeSlug string) (*models.BookingTypeResponse, error)
	GetAllByTenant(ctx context.Context, tenantSlug string) (*models.BookingTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
