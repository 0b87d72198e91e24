package get_calendar

import (
	"context"
	"errors"
	"fmt"

	bookingTypeRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/bookingtype"
	tenantRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/tenant"
)

// UseCase use case для построения календаря выбора даты
type UseCase struct {
	tenantRepo       TenantRepository
	bookingTypeRepo  BookingTypeRepository
	availabilityRepo AvailabilityRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tenantRepo TenantRepository,
	bookingTypeRepo BookingTypeRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:       tenantRepo,
		bookingTypeRepo:  bookingTypeRepo,
		availabilityRepo: availabilityRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: tenant=%s, bookingType=%s, year=%d, month=%d",
		req.TenantSlug, req.BookingTypeSlug, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем тенанта и его таймзону
	tenant, err := uc.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("GetCalendar: tenant slug=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetCalendar: failed to get tenant slug=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	loc, err := tenant.Location()
	if err != nil {
		uc.logger.Error("GetCalendar: invalid timezone %q for tenant=%s: %v", tenant.Timezone, tenant.Slug, err)
		return nil, fmt.Errorf("%w: invalid tenant timezone: %v", ErrInternal, err)
	}

	// 4. Получаем тип бронирования
	bookingType, err := uc.bookingTypeRepo.GetByTenantAndSlug(ctx, tenant.ID, req.BookingTypeSlug)
	if err != nil {
		if errors.Is(err, bookingTypeRepo.ErrBookingTypeNotFound) {
			uc.logger.Warn("GetCalendar: booking type slug=%s not found for tenant=%s", req.BookingTypeSlug, tenant.Slug)
			return nil, ErrBookingTypeNotFound
		}
		uc.logger.Error("GetCalendar: failed to get booking type slug=%s: %v", req.BookingTypeSlug, err)
		return nil, fmt.Errorf("%w: failed to get booking type: %v", ErrInternal, err)
	}

	if !bookingType.IsActive {
		uc.logger.Warn("GetCalendar: booking type slug=%s is inactive", req.BookingTypeSlug)
		return nil, ErrBookingTypeNotFound
	}

	// 5. Получаем правила доступности и blackout-интервалы
	rules, err := uc.availabilityRepo.GetRulesByBookingType(ctx, bookingType.ID)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	blackouts, err := uc.availabilityRepo.GetBlackoutsByBookingType(ctx, bookingType.ID)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get blackout ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackout ranges: %v", ErrInternal, err)
	}

	// 6. Строим календарную сетку месяца
	days := buildMonthCalendar(
		req.Year,
		req.Month,
		rules,
		blackouts,
		bookingType.MinAdvanceBookingHours,
		bookingType.EffectiveMaxAdvanceBookingDays(),
		now,
		loc,
	)

	selectable := 0
	for _, d := range days {
		if d.IsSelectable {
			selectable++
		}
	}
	uc.logger.Info("GetCalendar: built %d days (%d selectable) for tenant=%s, bookingType=%s, %d-%02d",
		len(days), selectable, tenant.Slug, bookingType.Slug, req.Year, req.Month)

	return &Response{
		TenantSlug:      tenant.Slug,
		BookingTypeSlug: bookingType.Slug,
		Year:            req.Year,
		Month:           req.Month,
		Timezone:        tenant.Timezone,
		Days:            days,
	}, nil
}
