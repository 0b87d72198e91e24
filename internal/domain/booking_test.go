package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_OccupiesSlot(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).OccupiesSlot())
	assert.True(t, (&Booking{Status: StatusConfirmed}).OccupiesSlot())
	assert.False(t, (&Booking{Status: StatusCancelled}).OccupiesSlot())
	assert.False(t, (&Booking{Status: StatusDeclined}).OccupiesSlot())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusDeclined}).CanBeCancelled())
}

func TestBookingType_EffectiveDurationMinutes(t *testing.T) {
	assert.Equal(t, DefaultDurationMinutes, (&BookingType{DurationMinutes: 0}).EffectiveDurationMinutes())
	assert.Equal(t, 45, (&BookingType{DurationMinutes: 45}).EffectiveDurationMinutes())
	// Отрицательное значение не подменяется дефолтом
	assert.Equal(t, -15, (&BookingType{DurationMinutes: -15}).EffectiveDurationMinutes())
}

func TestBookingType_EffectiveMaxAdvanceBookingDays(t *testing.T) {
	assert.Equal(t, DefaultMaxAdvanceBookingDays, (&BookingType{MaxAdvanceBookingDays: 0}).EffectiveMaxAdvanceBookingDays())
	assert.Equal(t, DefaultMaxAdvanceBookingDays, (&BookingType{MaxAdvanceBookingDays: -5}).EffectiveMaxAdvanceBookingDays())
	assert.Equal(t, 30, (&BookingType{MaxAdvanceBookingDays: 30}).EffectiveMaxAdvanceBookingDays())
}
