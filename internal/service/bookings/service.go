package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	bookingRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/booking"
	tenantRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/tenant"
	"github.com/IbrahimTareq/masjidaa-booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями со стороны персонала мечети
type Service struct {
	bookingRepo BookingRepository
	tenantRepo  TenantRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	tenantRepo TenantRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		tenantRepo:  tenantRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByReference получает бронирование по публичному UUID
// Гостевой поток: ссылка из письма-подтверждения, аутентификация не требуется
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking reference=%s", reference)

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking reference=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for reference=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetTenantBookings получает бронирования тенанта с гибкой фильтрацией
// Поддерживает фильтрацию по типу услуги, периоду, статусу и включению
// неактивных бронирований
func (s *Service) GetTenantBookings(ctx context.Context, req *models.GetTenantBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTenantBookings: fetching bookings for tenant=%s, includeInactive=%v",
		req.TenantSlug, req.IncludeInactive)

	tenant, err := s.tenantRepo.GetBySlug(ctx, req.TenantSlug)
	if err != nil {
		if errors.Is(err, tenantRepo.ErrTenantNotFound) {
			s.logger.Warn("GetTenantBookings: tenant slug=%s not found", req.TenantSlug)
			return nil, ErrTenantNotFound
		}
		s.logger.Error("GetTenantBookings: failed to get tenant slug=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: GetTenantBookings - failed to get tenant: %v", ErrInternal, err)
	}

	filter := domain.TenantBookingsFilter{
		TenantID:        tenant.ID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IncludeInactive: req.IncludeInactive,
	}

	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetTenantBookings: invalid status=%s for tenant=%s", *req.Status, req.TenantSlug)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.GetByTenantWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTenantBookings: repository error for tenant=%s: %v", req.TenantSlug, err)
		return nil, fmt.Errorf("%w: GetTenantBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTenantBookings: successfully fetched %d bookings for tenant=%s", len(bookings), req.TenantSlug)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование со стороны персонала
// Бронирования не удаляются: отмена - смена статуса с сохранением причины
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by staff=%d", bookingID, req.StaffID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus подтверждает или отклоняет ожидающее бронирование
// Допустимые переходы: pending -> confirmed, pending -> declined
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by staff=%d",
		bookingID, req.Status, req.StaffID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if !isAllowedTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return ErrInvalidTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// isAllowedTransition проверяет допустимость смены статуса персоналом
// Отмена идёт через Cancel и здесь не разрешена
func isAllowedTransition(from, to domain.BookingStatus) bool {
	if from != domain.StatusPending {
		return false
	}
	return to == domain.StatusConfirmed || to == domain.StatusDeclined
}
