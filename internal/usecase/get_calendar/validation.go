package get_calendar

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TenantSlug == "" {
		return fmt.Errorf("%w: tenantSlug is required", ErrInvalidInput)
	}

	if req.BookingTypeSlug == "" {
		return fmt.Errorf("%w: bookingTypeSlug is required", ErrInvalidInput)
	}

	if req.Month < int(time.January) || req.Month > int(time.December) {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	// Ограничиваем год разумным диапазоном, чтобы не строить сетку на века вперед
	if req.Year < 2000 || req.Year > 2200 {
		return fmt.Errorf("%w: year is out of range", ErrInvalidInput)
	}

	return nil
}
