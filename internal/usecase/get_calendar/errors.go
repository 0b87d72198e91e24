package get_calendar

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("get_calendar: tenant not found")

	// ErrBookingTypeNotFound возвращается, когда тип бронирования не найден или неактивен
	ErrBookingTypeNotFound = errors.New("get_calendar: booking type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
