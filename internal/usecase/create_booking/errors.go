package create_booking

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("create_booking: tenant not found")

	// ErrBookingTypeNotFound возвращается, когда тип бронирования не найден или неактивен
	ErrBookingTypeNotFound = errors.New("create_booking: booking type not found")

	// ErrDateUnavailable возвращается, когда дата закрыта blackout-интервалом
	ErrDateUnavailable = errors.New("create_booking: date is unavailable")

	// ErrInvalidTimeSlot возвращается, когда запрошенный интервал не совпадает
	// ни с одним слотом из сетки генератора
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибка валидации формы бронирования
// Содержит все нарушения разом: ключ - имя поля, значение - сообщение
// для пользователя. Невалидная форма - ожидаемый исход, а не сбой
type ValidationError struct {
	Fields map[string]string
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return "create_booking: form validation failed"
}
