package get_booking_by_reference

import (
	"context"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
