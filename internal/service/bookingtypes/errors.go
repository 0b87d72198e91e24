package bookingtypes

import "errors"

var (
	// ErrTenantNotFound возвращается, когда тенант не найден
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrBookingTypeNotFound возвращается, когда тип бронирования не найден
	ErrBookingTypeNotFound = errors.New("booking type not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
