package domain

import (
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusDeclined  BookingStatus = "declined"
)

// Booking бронирование услуги мечети гостем
// Бронирования никогда не удаляются - история сохраняется полностью,
// освобождение слота происходит через смену статуса
type Booking struct {
	ID            int64
	Reference     string // Публичный UUID для подтверждений гостю
	TenantID      int64
	BookingTypeID int64
	BookingDate   time.Time
	StartTime     types.TimeString
	EndTime       types.TimeString
	Status        BookingStatus

	GuestName  string
	GuestEmail string
	GuestPhone *string
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesSlot возвращает true, если бронирование занимает слот
// Слот занимают только pending и confirmed; cancelled и declined освобождают его
func (b *Booking) OccupiesSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled возвращает true, если бронирование отменено или отклонено
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled || b.Status == StatusDeclined
}

// TenantBookingsFilter фильтр для получения бронирований тенанта
type TenantBookingsFilter struct {
	TenantID        int64          // Обязательный параметр
	BookingTypeID   *int64         // Фильтр по типу услуги (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые и отклонённые бронирования
}
