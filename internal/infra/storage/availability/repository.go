package availability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/dbmetrics"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/psqlbuilder"
)

// Repository репозиторий для чтения правил доступности и blackout-интервалов
// Обе таблицы ведутся админкой платформы; сервис их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRulesByBookingType получает еженедельные правила доступности услуги
// Порядок день недели + время начала; окна одного дня могут пересекаться,
// объединение выполняет генератор слотов
func (r *Repository) GetRulesByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_type_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("availability_rules").
		Where(squirrel.Eq{"booking_type_id": bookingTypeID}).
		OrderBy("day_of_week ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByBookingType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRulesByBookingType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.AvailabilityRule, 0)
	for rows.Next() {
		var rule domain.AvailabilityRule
		var dayOfWeek string
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.BookingTypeID,
			&dayOfWeek,
			&rule.StartTime,
			&rule.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRulesByBookingType - scan row: %v", ErrScanRow, err)
		}

		rule.DayOfWeek, err = domain.ParseDayOfWeek(dayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRulesByBookingType - invalid day_of_week: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRulesByBookingType - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetBlackoutsByBookingType получает blackout-интервалы услуги
func (r *Repository) GetBlackoutsByBookingType(ctx context.Context, bookingTypeID int64) ([]*domain.BlackoutRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_type_id",
		"start_date",
		"end_date",
		"reason",
		"created_at",
		"updated_at",
	).
		From("blackout_ranges").
		Where(squirrel.Eq{"booking_type_id": bookingTypeID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlackoutsByBookingType - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlackoutsByBookingType - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blackouts := make([]*domain.BlackoutRange, 0)
	for rows.Next() {
		var blackout domain.BlackoutRange
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&blackout.ID,
			&blackout.BookingTypeID,
			&blackout.StartDate,
			&blackout.EndDate,
			&blackout.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetBlackoutsByBookingType - scan row: %v", ErrScanRow, err)
		}

		blackout.CreatedAt = createdAt.Time
		blackout.UpdatedAt = updatedAt.Time
		blackouts = append(blackouts, &blackout)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetBlackoutsByBookingType - rows error: %v", ErrScanRow, err)
	}

	return blackouts, nil
}
