package bookingtypes

import (
	"context"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
)

// TenantRepository интерфейс репозитория тенантов
type TenantRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

// BookingTypeRepository интерфейс репозитория типов бронирования
type BookingTypeRepository interface {
	GetByTenantAndSlug(ctx context.Context, tenantID int64, slug string) (*domain.BookingType, error)
	GetAllByTenant(ctx context.Context, tenantID int64) ([]*domain.BookingType, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
