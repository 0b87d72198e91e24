package get_calendar

import (
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	getCalendar "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/get_calendar"
)

// CalendarDayResponse HTTP модель одного дня календарной сетки
type CalendarDayResponse struct {
	Date         string `json:"date"`      // "2026-03-02"
	DayOfWeek    string `json:"dayOfWeek"` // "monday"
	IsSelectable bool   `json:"isSelectable"`
	IsToday      bool   `json:"isToday"`
	InMonth      bool   `json:"inMonth"`
}

// CalendarResponse HTTP модель календаря на месяц
type CalendarResponse struct {
	TenantSlug      string                `json:"tenantSlug"`
	BookingTypeSlug string                `json:"bookingTypeSlug"`
	Year            int                   `json:"year"`
	Month           int                   `json:"month"`
	Timezone        string                `json:"timezone"`
	Days            []CalendarDayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDayResponse, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDayResponse{
			Date:         d.Date.Format(domain.DateFormat),
			DayOfWeek:    d.DayOfWeek.String(),
			IsSelectable: d.IsSelectable,
			IsToday:      d.IsToday,
			InMonth:      d.InMonth,
		}
	}

	return &CalendarResponse{
		TenantSlug:      resp.TenantSlug,
		BookingTypeSlug: resp.BookingTypeSlug,
		Year:            resp.Year,
		Month:           resp.Month,
		Timezone:        resp.Timezone,
		Days:            days,
	}
}
