package bookingtypes

import (
	"context"
	"errors"
	"fmt"

	bookingTypeRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/bookingtype"
	tenantRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/tenant"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookingtypes/models"
)

// Service сервис для чтения типов бронирования
// Типы бронирования, правила доступности и blackout-интервалы ведутся
// админкой платформы; этот сервис их только читает
type Service struct {
	tenantRepo      TenantRepository
	bookingTypeRepo BookingTypeRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса типов бронирования
func NewService(
	tenantRepo TenantRepository,
	bookingTypeRepo BookingTypeRepository,
	logger Logger,
) *Service {
	return &Service{
		tenantRepo:      tenantRepo,
		bookingTypeRepo: bookingTypeRepo,
		logger:          logger,
	}
}

// GetBySlug получает тип бронирования с разрешённой конфигурацией
// Неактивные типы не видны публичному API
func (s *Service) GetBySlug(ctx context.Context, tenantSlug, bookingTypeSlug string) (*models.BookingTypeResponse, error) {
	s.logger.Info("GetBySlug: fetching booking type tenant=%s, slug=%s", tenantSlug, bookingTypeSlug)

	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("GetBySlug: tenant slug=%s not found", tenantSlug)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("GetBySlug: failed to get tenant slug=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: GetBySlug - failed to get tenant: %v", ErrInternal, err)
	}

	bookingType, err := s.bookingTypeRepo.GetByTenantAndSlug(ctx, tenant.ID, bookingTypeSlug)
	if err != nil {
		if errors.Is(err, bookingTypeRepo.ErrBookingTypeNotFound) {
			s.logger.Warn("GetBySlug: booking type slug=%s not found for tenant=%s", bookingTypeSlug, tenantSlug)
			return nil, ErrBookingTypeNotFound
		}
		s.logger.Error("GetBySlug: failed to get booking type slug=%s: %v", bookingTypeSlug, err)
		return nil, fmt.Errorf("%w: GetBySlug - repository error: %v", ErrInternal, err)
	}

	if !bookingType.IsActive {
		s.logger.Warn("GetBySlug: booking type slug=%s is inactive", bookingTypeSlug)
		return nil, ErrBookingTypeNotFound
	}

	return models.FromDomainBookingType(bookingType, tenant), nil
}

// GetAllByTenant получает все активные типы бронирования тенанта
func (s *Service) GetAllByTenant(ctx context.Context, tenantSlug string) (*models.BookingTypeListResponse, error) {
	s.logger.Info("GetAllByTenant: fetching booking types for tenant=%s", tenantSlug)

	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("GetAllByTenant: tenant slug=%s not found", tenantSlug)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("GetAllByTenant: failed to get tenant slug=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: GetAllByTenant - failed to get tenant: %v", ErrInternal, err)
	}

	bookingTypes, err := s.bookingTypeRepo.GetAllByTenant(ctx, tenant.ID)
	if err != nil {
		s.logger.Error("GetAllByTenant: repository error for tenant=%s: %v", tenantSlug, err)
		return nil, fmt.Errorf("%w: GetAllByTenant - repository error: %v", ErrInternal, err)
	}

	resp := &models.BookingTypeListResponse{
		BookingTypes: make([]models.BookingTypeResponse, 0, len(bookingTypes)),
	}
	for _, bt := range bookingTypes {
		if !bt.IsActive {
			continue
		}
		resp.BookingTypes = append(resp.BookingTypes, *models.FromDomainBookingType(bt, tenant))
	}

	s.logger.Info("GetAllByTenant: successfully fetched %d booking types for tenant=%s",
		len(resp.BookingTypes), tenantSlug)
	return resp, nil
}
