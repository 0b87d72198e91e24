package get_available_slots

import (
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	getAvailableSlots "github.com/IbrahimTareq/masjidaa-booking-service/internal/usecase/get_available_slots"
)

// TimeSlotResponse HTTP модель одного слота
type TimeSlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "10:30"
	Available bool   `json:"available"`
}

// SlotsResponse HTTP модель списка слотов на дату
// Недоступные слоты присутствуют с available=false: UI отличает "всё занято"
// от "слотов не существует"
type SlotsResponse struct {
	TenantSlug      string             `json:"tenantSlug"`
	BookingTypeSlug string             `json:"bookingTypeSlug"`
	Date            string             `json:"date"`
	Timezone        string             `json:"timezone"`
	DurationMinutes int                `json:"durationMinutes"`
	Slots           []TimeSlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]TimeSlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = TimeSlotResponse{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Available: s.Available,
		}
	}

	return &SlotsResponse{
		TenantSlug:      resp.TenantSlug,
		BookingTypeSlug: resp.BookingTypeSlug,
		Date:            resp.Date.Format(domain.DateFormat),
		Timezone:        resp.Timezone,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
