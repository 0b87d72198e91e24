package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

func mkRule(day domain.DayOfWeek, start, end string) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		DayOfWeek: day,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func mkBooking(start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    status,
	}
}

// Понедельник 2026-03-02; now накануне, чтобы минимальный срок не влиял
var (
	testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
)

func TestGenerateSlots_SingleWindow(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "10:00")}

	slots := generateSlots(testDate, rules, 30, 0, nil, 0, testNow, time.UTC)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("09:30"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[1].EndTime)
	assert.True(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestGenerateSlots_BookedSlotStaysInOutput(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "10:00")}
	bookings := []*domain.Booking{mkBooking("09:00", "09:30", domain.StatusConfirmed)}

	slots := generateSlots(testDate, rules, 30, 0, bookings, 0, testNow, time.UTC)

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestGenerateSlots_PendingBlocksCancelledFrees(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "11:00")}
	bookings := []*domain.Booking{
		mkBooking("09:00", "10:00", domain.StatusPending),
		mkBooking("10:00", "11:00", domain.StatusCancelled),
	}

	slots := generateSlots(testDate, rules, 60, 0, bookings, 0, testNow, time.UTC)

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestGenerateSlots_AdjacentBookingDoesNotBlock(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "10:00")}
	// Интервалы полуоткрытые: бронирование до 09:30 не задевает слот с 09:30
	bookings := []*domain.Booking{mkBooking("08:30", "09:30", domain.StatusConfirmed)}

	slots := generateSlots(testDate, rules, 30, 0, bookings, 0, testNow, time.UTC)

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
}

func TestGenerateSlots_BufferShiftsStep(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "10:30")}

	slots := generateSlots(testDate, rules, 30, 15, nil, 0, testNow, time.UTC)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("09:30"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("09:45"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("10:15"), slots[1].EndTime)
}

func TestGenerateSlots_PartialLeftoverDropped(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "10:15")}

	slots := generateSlots(testDate, rules, 30, 0, nil, 0, testNow, time.UTC)

	// Остаток 10:00-10:15 короче слота и не попадает в выдачу
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("10:00"), slots[1].EndTime)
}

func TestGenerateSlots_OverlappingWindowsMerged(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		mkRule(domain.Monday, "09:00", "11:00"),
		mkRule(domain.Monday, "10:00", "12:00"),
	}

	slots := generateSlots(testDate, rules, 60, 0, nil, 0, testNow, time.UTC)

	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("11:00"), slots[2].StartTime)
}

func TestGenerateSlots_AdjacentWindowsMerged(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		mkRule(domain.Monday, "09:00", "10:00"),
		mkRule(domain.Monday, "10:00", "11:00"),
	}

	// Слот 09:45-10:30 пересекает стык окон: окна объединены
	slots := generateSlots(testDate, rules, 45, 0, nil, 0, testNow, time.UTC)

	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:45"), slots[1].StartTime)
	assert.Equal(t, types.TimeString("10:30"), slots[1].EndTime)
}

func TestGenerateSlots_SeparateWindowsNotCrossed(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		mkRule(domain.Monday, "09:00", "10:00"),
		mkRule(domain.Monday, "14:00", "15:00"),
	}

	slots := generateSlots(testDate, rules, 45, 0, nil, 0, testNow, time.UTC)

	// В каждом окне помещается ровно один слот, через разрыв слотов нет
	require.Len(t, slots, 2)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("14:00"), slots[1].StartTime)
}

func TestGenerateSlots_MinAdvanceMarksEarlySlots(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "12:00")}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	slots := generateSlots(testDate, rules, 60, 0, nil, 2, now, time.UTC)

	require.Len(t, slots, 3)
	// Порог now+2h = 10:00; граница не строгая
	assert.False(t, slots[0].Available)
	assert.True(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestGenerateSlots_EmptyResults(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "12:00")}

	// Нет правил на этот день недели
	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, generateSlots(tuesday, rules, 30, 0, nil, 0, testNow, time.UTC))

	// Нет правил вообще
	assert.Empty(t, generateSlots(testDate, nil, 30, 0, nil, 0, testNow, time.UTC))

	// Некорректная длительность - пустая выдача, не паника
	assert.Empty(t, generateSlots(testDate, rules, 0, 0, nil, 0, testNow, time.UTC))
	assert.Empty(t, generateSlots(testDate, rules, -15, 0, nil, 0, testNow, time.UTC))

	// Окно короче слота
	short := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "09:20")}
	assert.Empty(t, generateSlots(testDate, short, 30, 0, nil, 0, testNow, time.UTC))
}

func TestGenerateSlots_OrderedAndDisjoint(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		mkRule(domain.Monday, "14:00", "16:00"),
		mkRule(domain.Monday, "09:00", "11:30"),
	}

	slots := generateSlots(testDate, rules, 25, 10, nil, 0, testNow, time.UTC)
	require.NotEmpty(t, slots)

	for i, s := range slots {
		assert.Equal(t, 25, s.DurationMinutes())
		if i > 0 {
			assert.GreaterOrEqual(t, s.StartTime.Minutes(), slots[i-1].EndTime.Minutes())
		}
	}
}

func TestGenerateSlots_SameInputsSameOutput(t *testing.T) {
	rules := []*domain.AvailabilityRule{
		mkRule(domain.Monday, "09:00", "12:00"),
		mkRule(domain.Monday, "14:00", "16:00"),
	}
	bookings := []*domain.Booking{mkBooking("10:00", "10:30", domain.StatusPending)}

	first := generateSlots(testDate, rules, 30, 15, bookings, 2, testNow, time.UTC)
	second := generateSlots(testDate, rules, 30, 15, bookings, 2, testNow, time.UTC)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestGenerateSlots_AdvanceBoundaryOneWay(t *testing.T) {
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "12:00")}

	// "Сейчас" движется вперёд в день бронирования; слоты 09:00, 10:00, 11:00,
	// минимальный срок - 2 часа
	nows := []time.Time{
		time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
	}

	var prev []domain.TimeSlot
	for _, now := range nows {
		slots := generateSlots(testDate, rules, 60, 0, nil, 2, now, time.UTC)
		require.Len(t, slots, 3)

		// Закрывшийся слот не может снова стать доступным
		if prev != nil {
			for i := range slots {
				if !prev[i].Available {
					assert.False(t, slots[i].Available,
						"slot %s became available again at now=%s", slots[i].StartTime, now)
				}
			}
		}
		prev = slots
	}

	// К последнему моменту все слоты дня закрыты
	for _, s := range prev {
		assert.False(t, s.Available, "slot %s", s.StartTime)
	}
}
