package get_calendar

import "github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"

// Request модель запроса календаря на месяц
type Request struct {
	TenantSlug      string // Slug тенанта (мечети)
	BookingTypeSlug string // Slug типа бронирования
	Year            int    // Год (например, 2026)
	Month           int    // Месяц (1-12)
}

// Response модель ответа с календарной сеткой месяца
// Сетка выровнена по неделям: включает хвосты соседних месяцев с InMonth=false
type Response struct {
	TenantSlug      string
	BookingTypeSlug string
	Year            int
	Month           int
	Timezone        string
	Days            []domain.CalendarDay
}
