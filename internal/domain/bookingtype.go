package domain

import "time"

// BookingType бронируемая услуга мечети (встреча с имамом, аренда зала,
// церемония никаха и т.д.) вместе с её конфигурацией слотов
type BookingType struct {
	ID          int64
	TenantID    int64
	Slug        string
	Name        string
	Description *string
	IsActive    bool

	// Конфигурация слотов
	DurationMinutes        int // Длительность слота
	BufferMinutes          int // Пауза после каждого бронирования
	MinAdvanceBookingHours int // Минимальный срок до начала слота, в часах от "сейчас"
	MaxAdvanceBookingDays  int // Максимальный горизонт бронирования, в днях от "сегодня" (0 = по умолчанию)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveDurationMinutes возвращает длительность слота с учётом значения
// по умолчанию. Дефолт применяется только для незаданного значения (0);
// отрицательная длительность - ошибка конфигурации, генератор слотов на ней
// деградирует до пустого результата
func (bt *BookingType) EffectiveDurationMinutes() int {
	if bt.DurationMinutes == 0 {
		return DefaultDurationMinutes
	}
	return bt.DurationMinutes
}

// EffectiveMaxAdvanceBookingDays возвращает горизонт бронирования с учётом
// значения по умолчанию (90 дней)
func (bt *BookingType) EffectiveMaxAdvanceBookingDays() int {
	if bt.MaxAdvanceBookingDays <= 0 {
		return DefaultMaxAdvanceBookingDays
	}
	return bt.MaxAdvanceBookingDays
}
