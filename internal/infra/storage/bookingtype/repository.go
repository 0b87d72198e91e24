package bookingtype

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/dbmetrics"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/psqlbuilder"
)

var bookingTypeColumns = []string{
	"id",
	"tenant_id",
	"slug",
	"name",
	"description",
	"is_active",
	"duration_minutes",
	"buffer_minutes",
	"min_advance_booking_hours",
	"max_advance_booking_days",
	"created_at",
	"updated_at",
}

// Repository репозиторий для чтения типов бронирования
// Конфигурация слотов ведётся админкой платформы; сервис её только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов бронирования
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByTenantAndSlug получает тип бронирования по тенанту и slug
func (r *Repository) GetByTenantAndSlug(ctx context.Context, tenantID int64, slug string) (*domain.BookingType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingTypeColumns...).
		From("booking_types").
		Where(squirrel.Eq{"tenant_id": tenantID, "slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByTenantAndSlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBookingType(executor.QueryRowContext(ctx, query, args...), "GetByTenantAndSlug")
}

// GetByID получает тип бронирования по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.BookingType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingTypeColumns...).
		From("booking_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBookingType(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetAllByTenant получает все типы бронирования тенанта
func (r *Repository) GetAllByTenant(ctx context.Context, tenantID int64) ([]*domain.BookingType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingTypeColumns...).
		From("booking_types").
		Where(squirrel.Eq{"tenant_id": tenantID}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllByTenant - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookingTypes := make([]*domain.BookingType, 0)
	for rows.Next() {
		var bt domain.BookingType
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&bt.ID,
			&bt.TenantID,
			&bt.Slug,
			&bt.Name,
			&bt.Description,
			&bt.IsActive,
			&bt.DurationMinutes,
			&bt.BufferMinutes,
			&bt.MinAdvanceBookingHours,
			&bt.MaxAdvanceBookingDays,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetAllByTenant - scan row: %v", ErrScanRow, err)
		}

		bt.CreatedAt = createdAt.Time
		bt.UpdatedAt = updatedAt.Time
		bookingTypes = append(bookingTypes, &bt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllByTenant - rows error: %v", ErrScanRow, err)
	}

	return bookingTypes, nil
}

func (r *Repository) scanBookingType(row *sql.Row, op string) (*domain.BookingType, error) {
	var bt domain.BookingType
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&bt.ID,
		&bt.TenantID,
		&bt.Slug,
		&bt.Name,
		&bt.Description,
		&bt.IsActive,
		&bt.DurationMinutes,
		&bt.BufferMinutes,
		&bt.MinAdvanceBookingHours,
		&bt.MaxAdvanceBookingDays,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking type: %v", ErrScanRow, op, err)
	}

	bt.CreatedAt = createdAt.Time
	bt.UpdatedAt = updatedAt.Time

	return &bt, nil
}
