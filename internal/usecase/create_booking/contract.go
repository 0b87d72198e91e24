package create_booking

import (
	"context"
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// BookingTypeRepository интерфейс репозитория типов бронирования
type BookingTypeRepository interface {
	GetByTenantAndSlug(ctx context.Context, tenantID int64, slug string) (*domain.BookingType, error)
}

// AvailabilityRepository интерфейс репозитория правил доступности
type AvailabilityRepository interface {
	GetRulesByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.AvailabilityRule, error)
	GetBlackoutsByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.BlackoutRange, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetByTenantWithFilter внутри транзакции блокирует строки (FOR UPDATE)
	GetByTenantWithFilter(ctx context.Context, filter domain.TenantBookingsFilter) ([]*domain.Booking, error)
}

// NotifierClient интерфейс клиента сервиса уведомлений
type NotifierClient interface {
	SendBookingConfirmation(ctx context.Context, booking *domain.Booking, tenant *domain.Tenant, bookingType *domain.BookingType) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
