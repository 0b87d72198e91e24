package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notifier client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Бронирование создаётся и без письма; вызывающий код только логирует сбой
	ErrServiceDegraded = errors.New("notifier unavailable: graceful degradation applied")
)
