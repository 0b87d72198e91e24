package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	bookingTypeRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/bookingtype"
	tenantRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/tenant"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/ptr"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	tenantRepo       TenantRepository
	bookingTypeRepo  BookingTypeRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	notifierClient   NotifierClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// notifierClient может быть nil - сервис работает без уведомлений
func NewUseCase(
	tenantRepo TenantRepository,
	bookingTypeRepo BookingTypeRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		tenantRepo:       tenantRepo,
		bookingTypeRepo:  bookingTypeRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		notifierClient:   notifierClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и вставка выполняются в сериализуемой транзакции
// с блокировкой строк: две одновременные отправки на последний свободный
// слот не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tenant=%s, bookingType=%s, date=%s, time=%s-%s",
		req.TenantSlug, req.BookingTypeSlug, req.BookingDate, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем тенанта и его таймзону
	tenant, err := uc.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			uc.logger.Warn("CreateBooking: tenant slug=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tenant slug=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: failed to get tenant: %v", ErrInternal, err)
	}

	loc, err := tenant.Location()
	if err != nil {
		uc.logger.Error("CreateBooking: invalid timezone %q for tenant=%s: %v", tenant.Timezone, tenant.Slug, err)
		return nil, fmt.Errorf("%w: invalid tenant timezone: %v", ErrInternal, err)
	}

	// 4. Получаем тип бронирования
	bookingType, err := uc.bookingTypeRepo.GetByTenantAndSlug(ctx, tenant.ID, req.BookingTypeSlug)
	if err != nil {
		if errors.Is(err, bookingTypeRepo.ErrBookingTypeNotFound) {
			uc.logger.Warn("CreateBooking: booking type slug=%s not found for tenant=%s", req.BookingTypeSlug, tenant.Slug)
			return nil, ErrBookingTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get booking type slug=%s: %v", req.BookingTypeSlug, err)
		return nil, fmt.Errorf("%w: failed to get booking type: %v", ErrInternal, err)
	}

	if !bookingType.IsActive {
		uc.logger.Warn("CreateBooking: booking type slug=%s is inactive", req.BookingTypeSlug)
		return nil, ErrBookingTypeNotFound
	}

	// 5. Валидация формы: все нарушения собираются разом
	formErrs := validateForm(req, bookingType.MinAdvanceBookingHours, bookingType.EffectiveMaxAdvanceBookingDays(), now, loc)
	if len(formErrs) > 0 {
		uc.logger.Warn("CreateBooking: form validation failed: %d field(s)", len(formErrs))
		return nil, &ValidationError{Fields: formErrs}
	}

	// Форма валидна: разбор значений больше не может упасть
	day, _ := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(req.BookingDate), loc)
	startTime := types.TimeString(strings.TrimSpace(req.StartTime))
	endTime := types.TimeString(strings.TrimSpace(req.EndTime))

	// 6. Blackout-интервал закрывает дату целиком
	blackouts, err := uc.availabilityRepo.GetBlackoutsByBookingType(ctx, bookingType.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blackout ranges: %v", err)
		return nil, fmt.Errorf("%w: failed to get blackout ranges: %v", ErrInternal, err)
	}

	if domain.IsBlackedOut(day, blackouts) {
		uc.logger.Warn("CreateBooking: date %s is blacked out for bookingType=%s", req.BookingDate, bookingType.Slug)
		return nil, ErrDateUnavailable
	}

	// 7. Запрошенный интервал должен совпадать со слотом из сетки генератора
	rules, err := uc.availabilityRepo.GetRulesByBookingType(ctx, bookingType.ID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get availability rules: %v", err)
		return nil, fmt.Errorf("%w: failed to get availability rules: %v", ErrInternal, err)
	}

	duration := bookingType.EffectiveDurationMinutes()
	if err := validateSlotAlignment(day, startTime, endTime, rules, duration, bookingType.BufferMinutes, loc); err != nil {
		uc.logger.Warn("CreateBooking: slot %s-%s does not align with the slot grid", startTime, endTime)
		return nil, err
	}

	var result *domain.Booking

	// 8. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 8.1. Активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.TenantBookingsFilter{
			TenantID:        tenant.ID,
			BookingTypeID:   ptr.Ptr(bookingType.ID),
			StartDate:       ptr.Ptr(day),
			EndDate:         ptr.Ptr(day),
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByTenantWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 8.2. Проверяем занятость слота
		if hasOverlappingBooking(startTime, endTime, bookings) {
			uc.logger.Warn("CreateBooking: slot %s-%s on %s is already taken", startTime, endTime, req.BookingDate)
			return ErrSlotNotAvailable
		}

		// 8.3. Создаем бронирование
		booking := &domain.Booking{
			Reference:     uuid.NewString(),
			TenantID:      tenant.ID,
			BookingTypeID: bookingType.ID,
			BookingDate:   day,
			StartTime:     startTime,
			EndTime:       endTime,
			Status:        domain.StatusPending,
			GuestName:     strings.TrimSpace(req.GuestName),
			GuestEmail:    strings.TrimSpace(req.GuestEmail),
			GuestPhone:    req.GuestPhone,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s", result.ID, result.Reference)

	// 9. Уведомление гостю после коммита: сбой уведомления не откатывает
	// созданное бронирование
	if uc.notifierClient != nil {
		if err := uc.notifierClient.SendBookingConfirmation(ctx, result, tenant, bookingType); err != nil {
			uc.logger.Warn("CreateBooking: failed to send confirmation for booking id=%d: %v", result.ID, err)
		}
	}

	return &Response{
		ID:              result.ID,
		Reference:       result.Reference,
		TenantSlug:      tenant.Slug,
		BookingTypeSlug: bookingType.Slug,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		Status:          string(result.Status),
		GuestName:       result.GuestName,
		GuestEmail:      result.GuestEmail,
		GuestPhone:      result.GuestPhone,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
