package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/ptr"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// Понедельник 2026-03-02, 08:00 UTC
var formNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func validForm() *Request {
	return &Request{
		TenantSlug:      "al-noor",
		BookingTypeSlug: "imam-consultation",
		GuestName:       "Ahmed Khan",
		GuestEmail:      "ahmed@example.com",
		BookingDate:     "2026-03-09",
		StartTime:       "10:00",
		EndTime:         "10:30",
	}
}

func TestValidateForm_ValidForm(t *testing.T) {
	errs := validateForm(validForm(), 0, 90, formNow, time.UTC)
	assert.Empty(t, errs)
}

func TestValidateForm_CollectsAllViolations(t *testing.T) {
	req := &Request{
		GuestName:   "A",
		GuestEmail:  "not-an-email",
		GuestPhone:  ptr.Ptr("123"),
		Notes:       ptr.Ptr(string(make([]byte, 1001))),
		BookingDate: "not-a-date",
		StartTime:   "25:99",
		EndTime:     "",
	}

	errs := validateForm(req, 0, 90, formNow, time.UTC)

	// Все нарушения собраны за один вызов
	assert.Contains(t, errs, "guest_name")
	assert.Contains(t, errs, "guest_email")
	assert.Contains(t, errs, "guest_phone")
	assert.Contains(t, errs, "notes")
	assert.Contains(t, errs, "booking_date")
	assert.Contains(t, errs, "start_time")
	assert.Contains(t, errs, "end_time")

	// Кросс-проверка сроков не выполняется при невалидных дате и времени
	assert.NotContains(t, errs, "advance_booking")
}

func TestValidateForm_ShortNameAndBadEmailOnly(t *testing.T) {
	req := validForm()
	req.GuestName = "A"
	req.GuestEmail = "not-an-email"

	errs := validateForm(req, 0, 90, formNow, time.UTC)

	require.Len(t, errs, 2)
	assert.Equal(t, MsgGuestNameLength, errs["guest_name"])
	assert.Equal(t, MsgGuestEmailInvalid, errs["guest_email"])
}

func TestValidateForm_GuestName(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantMsg string
	}{
		{"empty", "", MsgGuestNameRequired},
		{"whitespace only", "   ", MsgGuestNameRequired},
		{"too short", "A", MsgGuestNameLength},
		{"digits rejected", "Ahmed123", MsgGuestNameChars},
		{"accented letters ok", "Zdépartement O'Brien-Héloïse", ""},
		{"cyrillic ok", "Расул Магомедов", ""},
		{"arabic ok", "محمد الأمين", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validForm()
			req.GuestName = tt.value

			errs := validateForm(req, 0, 90, formNow, time.UTC)
			if tt.wantMsg == "" {
				assert.NotContains(t, errs, "guest_name")
			} else {
				assert.Equal(t, tt.wantMsg, errs["guest_name"])
			}
		})
	}
}

func TestValidateForm_GuestPhone(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		wantMsg string
	}{
		{"nil is ok", nil, ""},
		{"empty is ok", ptr.Ptr(""), ""},
		{"plain digits ok", ptr.Ptr("0412345678"), ""},
		{"formatted ok", ptr.Ptr("+61 (04) 1234-5678"), ""},
		{"letters rejected", ptr.Ptr("04telephone"), MsgGuestPhoneInvalid},
		{"too few digits", ptr.Ptr("12345"), MsgGuestPhoneDigits},
		{"too many digits", ptr.Ptr("1234567890123456"), MsgGuestPhoneDigits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validForm()
			req.GuestPhone = tt.value

			errs := validateForm(req, 0, 90, formNow, time.UTC)
			if tt.wantMsg == "" {
				assert.NotContains(t, errs, "guest_phone")
			} else {
				assert.Equal(t, tt.wantMsg, errs["guest_phone"])
			}
		})
	}
}

func TestValidateForm_DateRules(t *testing.T) {
	req := validForm()
	req.BookingDate = "2026-03-01"

	errs := validateForm(req, 0, 90, formNow, time.UTC)
	assert.Equal(t, MsgDateInPast, errs["booking_date"])

	// Сегодняшняя дата не считается прошедшей
	req.BookingDate = "2026-03-02"
	errs = validateForm(req, 0, 90, formNow, time.UTC)
	assert.NotContains(t, errs, "booking_date")

	// Несуществующая календарная дата
	req.BookingDate = "2026-02-30"
	errs = validateForm(req, 0, 90, formNow, time.UTC)
	assert.Equal(t, MsgDateInvalid, errs["booking_date"])
}

func TestValidateForm_EndBeforeStart(t *testing.T) {
	req := validForm()
	req.StartTime = "10:30"
	req.EndTime = "10:00"

	errs := validateForm(req, 0, 90, formNow, time.UTC)
	assert.Equal(t, MsgEndBeforeStart, errs["end_time"])

	// Нулевая длительность тоже нарушение
	req.EndTime = "10:30"
	errs = validateForm(req, 0, 90, formNow, time.UTC)
	assert.Equal(t, MsgEndBeforeStart, errs["end_time"])
}

func TestValidateForm_AdvanceBookingMin(t *testing.T) {
	// Завтра 09:00 - это 25 часов от now: при min=48 нарушение
	req := validForm()
	req.BookingDate = "2026-03-03"
	req.StartTime = "09:00"
	req.EndTime = "09:30"

	errs := validateForm(req, 48, 90, formNow, time.UTC)
	require.Contains(t, errs, "advance_booking")
	// Срок от суток и больше формулируется в днях
	assert.Contains(t, errs["advance_booking"], "2 дн.")

	errs = validateForm(req, 12, 90, formNow, time.UTC)
	assert.NotContains(t, errs, "advance_booking")
}

func TestValidateForm_AdvanceBookingMinUnderDayInHours(t *testing.T) {
	// Сегодня 10:00 - это 2 часа от now: при min=6 нарушение в часах
	req := validForm()
	req.BookingDate = "2026-03-02"
	req.StartTime = "10:00"
	req.EndTime = "10:30"

	errs := validateForm(req, 6, 90, formNow, time.UTC)
	require.Contains(t, errs, "advance_booking")
	assert.Contains(t, errs["advance_booking"], "6 ч.")
}

func TestValidateForm_AdvanceBookingMax(t *testing.T) {
	req := validForm()
	req.BookingDate = "2026-04-15"
	req.StartTime = "10:00"
	req.EndTime = "10:30"

	errs := validateForm(req, 0, 30, formNow, time.UTC)
	require.Contains(t, errs, "advance_booking")
	assert.Contains(t, errs["advance_booking"], "30 дн.")

	errs = validateForm(req, 0, 90, formNow, time.UTC)
	assert.NotContains(t, errs, "advance_booking")
}

func TestValidateSlotAlignment(t *testing.T) {
	loc := time.UTC
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc) // понедельник
	rules := []*domain.AvailabilityRule{
		{DayOfWeek: domain.Monday, StartTime: "09:00", EndTime: "12:00"},
	}

	// Слоты сетки при duration=30, buffer=15: 09:00, 09:45, 10:30, 11:15
	assert.NoError(t, validateSlotAlignment(day, "09:00", "09:30", rules, 30, 15, loc))
	assert.NoError(t, validateSlotAlignment(day, "09:45", "10:15", rules, 30, 15, loc))

	// Начало не на шаге сетки
	assert.ErrorIs(t, validateSlotAlignment(day, "09:30", "10:00", rules, 30, 15, loc), ErrInvalidTimeSlot)

	// Длительность не равна duration
	assert.ErrorIs(t, validateSlotAlignment(day, "09:00", "10:00", rules, 30, 15, loc), ErrInvalidTimeSlot)

	// Вне окна
	assert.ErrorIs(t, validateSlotAlignment(day, "12:00", "12:30", rules, 30, 15, loc), ErrInvalidTimeSlot)

	// Нет правил на этот день недели
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, loc)
	assert.ErrorIs(t, validateSlotAlignment(tuesday, "09:00", "09:30", rules, 30, 15, loc), ErrInvalidTimeSlot)
}

func TestHasOverlappingBooking(t *testing.T) {
	bookings := []*domain.Booking{
		{StartTime: "10:00", EndTime: "10:30", Status: domain.StatusConfirmed},
		{StartTime: "11:00", EndTime: "11:30", Status: domain.StatusCancelled},
	}

	assert.True(t, hasOverlappingBooking(types.TimeString("10:00"), types.TimeString("10:30"), bookings))
	assert.True(t, hasOverlappingBooking(types.TimeString("09:45"), types.TimeString("10:15"), bookings))

	// Граничащие интервалы не пересекаются
	assert.False(t, hasOverlappingBooking(types.TimeString("10:30"), types.TimeString("11:00"), bookings))

	// Отменённое бронирование освобождает слот
	assert.False(t, hasOverlappingBooking(types.TimeString("11:00"), types.TimeString("11:30"), bookings))
}
