package domain

// Значения конфигурации по умолчанию
// Применяются на границе загрузки конфигурации (см. BookingType.Effective*),
// никогда внутри генератора слотов
const (
	DefaultDurationMinutes        = 30
	DefaultBufferMinutes          = 0
	DefaultMinAdvanceBookingHours = 0
	DefaultMaxAdvanceBookingDays  = 90
)

// Ограничения бизнес-валидации формы бронирования
const (
	MinGuestNameLength  = 2
	MaxGuestNameLength  = 100
	MaxGuestEmailLength = 255
	MinGuestPhoneDigits = 10
	MaxGuestPhoneDigits = 15
	MaxNotesLength      = 1000

	MaxCancellationReasonLength = 500
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы бронирований, занимающих слот
// Используются при подсчёте пересечений и фильтрации активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses статусы бронирований, освобождающих слот
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusDeclined,
}
