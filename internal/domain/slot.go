package domain

import "github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"

// TimeSlot дискретный временной слот на конкретную дату
// Генерируется заново на каждый запрос, не хранится
// Недоступные слоты сохраняются в выдаче с Available=false, чтобы UI мог
// отличить "всё занято" от "слотов не существует"
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
}

// DurationMinutes возвращает длительность слота в минутах
func (s *TimeSlot) DurationMinutes() int {
	return s.EndTime.Minutes() - s.StartTime.Minutes()
}
