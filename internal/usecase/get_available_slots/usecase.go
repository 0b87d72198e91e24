package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	bookingTypeRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/bookingtype"
	tenantRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/tenant"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/ptr"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	tenantRepo       TenantRepository
	bookingTypeRepo  BookingTypeRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tenantRepo TenantRepository,
	bookingTypeRepo BookingTypeRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:       tenantRepo,
		bookingTypeRepo:  bookingTypeRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: tenant=%s, bookingType=%s, date=%s",
		req.TenantSlug, req.BookingTypeSlug, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем тенанта и его таймзону
	tenant, err := uc.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("GetAvailableSlots: tenant slug=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get tenant slug=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	loc, err := tenant.Location()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid timezone %q for tenant=%s: %v", tenant.Timezone, tenant.Slug, err)
		return nil, fmt.Errorf("%w: invalid tenant timezone: %v", ErrInternal, err)
	}

	// 4. Получаем тип бронирования
	bookingType, err := uc.bookingTypeRepo.GetByTenantAndSlug(ctx, tenant.ID, req.BookingTypeSlug)
	if err != nil {
		if errors.Is(err, bookingTypeRepo.ErrBookingTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: booking type slug=%s not found for tenant=%s", req.BookingTypeSlug, tenant.Slug)
			return nil, ErrBookingTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get booking type slug=%s: %v", req.BookingTypeSlug, err)
		return nil, fmt.Errorf("%w: failed to get booking type: %v", ErrInternal, err)
	}

	if !bookingType.IsActive {
		uc.logger.Warn("GetAvailableSlots: booking type slug=%s is inactive", req.BookingTypeSlug)
		return nil, ErrBookingTypeNotFound
	}

	// 5. Валидация даты с учетом горизонта бронирования
	if err := validateDate(req.Date, now, bookingType.EffectiveMaxAdvanceBookingDays(), loc); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	duration := bookingType.EffectiveDurationMinutes()

	// 6. Blackout-интервал закрывает дату целиком: отдаем пустой список слотов
	blackouts, err := uc.availabilityRepo.GetBlackoutsByBookingType(ctx, bookingType.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blackout ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackout ranges: %v", ErrInternal, err)
	}

	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	if domain.IsBlackedOut(day, blackouts) {
		uc.logger.Info("GetAvailableSlots: date %s is blacked out for bookingType=%s",
			req.Date.Format(domain.DateFormat), bookingType.Slug)
		return uc.emptyResponse(tenant, bookingType, req.Date, duration), nil
	}

	// 7. Получаем правила доступности
	rules, err := uc.availabilityRepo.GetRulesByBookingType(ctx, bookingType.ID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	// 8. Получаем активные бронирования на эту дату
	filter := domain.TenantBookingsFilter{
		TenantID:        tenant.ID,
		BookingTypeID:   ptr.Ptr(bookingType.ID),
		StartDate:       ptr.Ptr(day),
		EndDate:         ptr.Ptr(day),
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 9. Генерируем слоты
	slots := generateSlots(
		req.Date,
		rules,
		duration,
		bookingType.BufferMinutes,
		bookings,
		bookingType.MinAdvanceBookingHours,
		now,
		loc,
	)

	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	uc.logger.Info("GetAvailableSlots: generated %d slots (%d available) for tenant=%s, bookingType=%s, date=%s",
		len(slots), available, tenant.Slug, bookingType.Slug, req.Date.Format(domain.DateFormat))

	return &Response{
		TenantSlug:      tenant.Slug,
		BookingTypeSlug: bookingType.Slug,
		Date:            req.Date,
		Timezone:        tenant.Timezone,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) emptyResponse(tenant *domain.Tenant, bookingType *domain.BookingType, date time.Time, duration int) *Response {
	return &Response{
		TenantSlug:      tenant.Slug,
		BookingTypeSlug: bookingType.Slug,
		Date:            date,
		Timezone:        tenant.Timezone,
		DurationMinutes: duration,
		Slots:           []domain.TimeSlot{},
	}
}
