package get_available_slots

import (
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
)

// Request модель запроса на получение слотов на дату
type Request struct {
	TenantSlug      string    // Slug тенанта (мечети)
	BookingTypeSlug string    // Slug типа бронирования
	Date            time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с упорядоченным списком слотов
// Пустой список на выбираемую дату означает "на этот день всё занято либо
// окон нет" - интерпретация остаётся за вызывающим UI
type Response struct {
	TenantSlug      string
	BookingTypeSlug string
	Date            time.Time
	Timezone        string
	DurationMinutes int
	Slots           []domain.TimeSlot
}
