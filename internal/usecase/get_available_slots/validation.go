package get_available_slots

import (
	"fmt"
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantSlug == "" {
		return fmt.Errorf("%w: tenantSlug is required", ErrInvalidInput)
	}

	if req.BookingTypeSlug == "" {
		return fmt.Errorf("%w: bookingTypeSlug is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
// Проверки выполняются в таймзоне тенанта
func validateDate(date time.Time, now time.Time, maxAdvanceDays int, loc *time.Location) error {
	nowLocal := now.In(loc)

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	if domain.IsDateInPast(day, nowLocal) {
		return ErrInvalidDate
	}

	latest := domain.DateOnly(nowLocal).AddDate(0, 0, maxAdvanceDays)
	if day.After(latest) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}
