package create_booking

import (
	"fmt"
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Форма гостя проверяется отдельно валидатором формы
func validateRequest(req *Request) error {
	if req.TenantSlug == "" {
		return fmt.Errorf("%w: tenantSlug is required", ErrInvalidInput)
	}

	if req.BookingTypeSlug == "" {
		return fmt.Errorf("%w: bookingTypeSlug is required", ErrInvalidInput)
	}

	return nil
}

// validateSlotAlignment проверяет, что запрошенный интервал совпадает с
// одним из слотов сетки генератора: лежит целиком в объединённом окне,
// начало кратно шагу duration+buffer от начала окна, длительность равна
// duration. Произвольные интервалы, даже свободные, не принимаются
func validateSlotAlignment(
	day time.Time,
	start, end types.TimeString,
	rules []*domain.AvailabilityRule,
	durationMinutes, bufferMinutes int,
	loc *time.Location,
) error {
	if durationMinutes <= 0 {
		return ErrInvalidTimeSlot
	}
	if bufferMinutes < 0 {
		bufferMinutes = 0
	}

	startMin := start.Minutes()
	endMin := end.Minutes()

	if endMin-startMin != durationMinutes {
		return ErrInvalidTimeSlot
	}

	dayRules := domain.RulesForDay(rules, domain.DayOfWeekFromTime(day.In(loc)))
	windows := make([]domain.TimeRange, 0, len(dayRules))
	for _, r := range dayRules {
		windows = append(windows, r.Window())
	}

	step := durationMinutes + bufferMinutes

	for _, window := range domain.MergeTimeRanges(windows) {
		wStart := window.Start.Minutes()
		wEnd := window.End.Minutes()

		if startMin < wStart || endMin > wEnd {
			continue
		}

		if (startMin-wStart)%step == 0 {
			return nil
		}
	}

	return ErrInvalidTimeSlot
}

// hasOverlappingBooking проверяет пересечение интервала хотя бы с одним
// активным бронированием. Интервалы полуоткрытые, граничащие не пересекаются
func hasOverlappingBooking(start, end types.TimeString, bookings []*domain.Booking) bool {
	requested := domain.TimeRange{Start: start, End: end}

	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}

		if requested.Overlaps(domain.TimeRange{Start: b.StartTime, End: b.EndTime}) {
			return true
		}
	}
	return false
}
