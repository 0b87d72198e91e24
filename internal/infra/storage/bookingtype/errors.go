package bookingtype

import "errors"

var (
	// ErrBookingTypeNotFound возвращается, когда тип бронирования не найден
	ErrBookingTypeNotFound = errors.New("bookingtype.repository: booking type not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("bookingtype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("bookingtype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("bookingtype.repository: failed to scan row")
)
