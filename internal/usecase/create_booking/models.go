package create_booking

import (
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
// Поля формы принимаются сырыми строками: валидатор формы собирает все
// нарушения разом, поэтому разбор значений не должен падать на первом же поле
type Request struct {
	TenantSlug      string  // Slug тенанта (мечети)
	BookingTypeSlug string  // Slug типа бронирования
	GuestName       string  // Имя гостя
	GuestEmail      string  // Email гостя
	GuestPhone      *string // Телефон гостя (опционально)
	Notes           *string // Дополнительные заметки (опционально)
	BookingDate     string  // Дата в формате YYYY-MM-DD
	StartTime       string  // Время начала в формате HH:MM
	EndTime         string  // Время конца в формате HH:MM
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	Reference       string // Публичный UUID для подтверждения гостю
	TenantSlug      string
	BookingTypeSlug string
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	Status          string

	GuestName  string
	GuestEmail string
	GuestPhone *string
	Notes      *string

	CreatedAt time.Time
}
