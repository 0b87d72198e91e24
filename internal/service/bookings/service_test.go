package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	bookingRepo "github.com/IbrahimTareq/masjidaa-booking-service/internal/infra/storage/booking"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

type fakeBookingRepo struct {
	byReference map[string]*domain.Booking
}

func (f *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	if b, ok := f.byReference[reference]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeBookingRepo) GetByTenantWithFilter(ctx context.Context, filter domain.TenantBookingsFilter) ([]*domain.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return nil
}

func (f *fakeBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	return nil
}

type fakeTenantRepo struct{}

func (f *fakeTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	return nil, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestService_GetByReference(t *testing.T) {
	reference := "6f1d3a52-8f4e-4a4b-9c0e-2b7d1c9e5a10"
	booking := &domain.Booking{
		ID:            42,
		Reference:     reference,
		TenantID:      1,
		BookingTypeID: 2,
		BookingDate:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("10:00"),
		EndTime:       types.TimeString("10:30"),
		Status:        domain.StatusPending,
		GuestName:     "Амина Хасан",
		GuestEmail:    "amina@example.com",
	}

	svc := NewService(
		&fakeBookingRepo{byReference: map[string]*domain.Booking{reference: booking}},
		&fakeTenantRepo{},
		nopLogger{},
	)

	result, err := svc.GetByReference(context.Background(), reference)
	require.NoError(t, err)
	assert.Equal(t, reference, result.Reference)
	assert.Equal(t, int64(42), result.ID)
	assert.Equal(t, "2026-03-09", result.BookingDate)
	assert.Equal(t, string(domain.StatusPending), result.Status)

	_, err = svc.GetByReference(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestIsAllowedTransition(t *testing.T) {
	tests := []struct {
		name string
		from domain.BookingStatus
		to   domain.BookingStatus
		want bool
	}{
		{"pending to confirmed", domain.StatusPending, domain.StatusConfirmed, true},
		{"pending to declined", domain.StatusPending, domain.StatusDeclined, true},
		{"pending to cancelled goes through Cancel", domain.StatusPending, domain.StatusCancelled, false},
		{"pending to pending", domain.StatusPending, domain.StatusPending, false},
		{"confirmed is final for staff", domain.StatusConfirmed, domain.StatusDeclined, false},
		{"declined is final", domain.StatusDeclined, domain.StatusConfirmed, false},
		{"cancelled is final", domain.StatusCancelled, domain.StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isAllowedTransition(tt.from, tt.to))
		})
	}
}
