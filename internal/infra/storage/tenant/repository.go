package tenant

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/dbmetrics"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для чтения тенантов
// Тенанты заводятся админкой платформы; сервис бронирований их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тенантов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlug получает тенанта по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"name",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("tenants").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTenant(executor.QueryRowContext(ctx, query, args...), "GetBySlug")
}

// GetByID получает тенанта по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"slug",
		"name",
		"timezone",
		"created_at",
		"updated_at",
	).
		From("tenants").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanTenant(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

func (r *Repository) scanTenant(row *sql.Row, op string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&tenant.ID,
		&tenant.Slug,
		&tenant.Name,
		&tenant.Timezone,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan tenant: %v", ErrScanRow, op, err)
	}

	tenant.CreatedAt = createdAt.Time
	tenant.UpdatedAt = updatedAt.Time

	return &tenant, nil
}
