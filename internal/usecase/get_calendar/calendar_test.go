package get_calendar

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

func mkBlackout(start, end time.Time) *domain.BlackoutRange {
	return &domain.BlackoutRange{StartDate: start, EndDate: end}
}

func TestIsDateSelectable_MinAdvanceDayLevel(t *testing.T) {
	loc := time.UTC
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "12:00")}

	// Понедельник 2026-03-02, 08:00
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, loc)

	// Сегодняшний понедельник: весь день кончается раньше now+24h -> не выбирается
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	assert.False(t, isDateSelectable(today, rules, nil, 24, 30, now, loc))

	// Следующий понедельник заведомо позже порога -> выбирается
	nextMonday := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	assert.True(t, isDateSelectable(nextMonday, rules, nil, 24, 30, now, loc))
}

func TestIsDateSelectable_PastDateAlwaysRejected(t *testing.T) {
	loc := time.UTC
	rules := []*domain.AvailabilityRule{mkRule(domain.Sunday, "00:00", "23:59")}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, loc)

	yesterday := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
	assert.False(t, isDateSelectable(yesterday, rules, nil, 0, 90, now, loc))
}

func TestIsDateSelectable_BlackoutDominatesRules(t *testing.T) {
	loc := time.UTC
	rules := []*domain.AvailabilityRule{
		mkRule(domain.Friday, "09:00", "12:00"),
		mkRule(domain.Friday, "14:00", "18:00"),
	}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, loc)

	friday := time.Date(2026, 3, 6, 0, 0, 0, 0, loc)
	assert.True(t, isDateSelectable(friday, rules, nil, 0, 90, now, loc))

	// Пересекающиеся blackout-интервалы: членство по объединению
	blackouts := []*domain.BlackoutRange{
		mkBlackout(time.Date(2026, 3, 5, 0, 0, 0, 0, loc), time.Date(2026, 3, 7, 0, 0, 0, 0, loc)),
		mkBlackout(time.Date(2026, 3, 6, 0, 0, 0, 0, loc), time.Date(2026, 3, 6, 0, 0, 0, 0, loc)),
	}
	assert.False(t, isDateSelectable(friday, rules, blackouts, 0, 90, now, loc))

	// Дата сразу после конца интервала снова выбирается (границы включительно)
	nextFriday := time.Date(2026, 3, 13, 0, 0, 0, 0, loc)
	assert.True(t, isDateSelectable(nextFriday, rules, blackouts, 0, 90, now, loc))
}

func TestIsDateSelectable_NoRuleForWeekday(t *testing.T) {
	loc := time.UTC
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "12:00")}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, loc)

	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, loc)
	assert.False(t, isDateSelectable(tuesday, rules, nil, 0, 90, now, loc))
}

func TestIsDateSelectable_MaxAdvanceBoundary(t *testing.T) {
	loc := time.UTC
	rules := []*domain.AvailabilityRule{
		mkRule(domain.Sunday, "09:00", "12:00"),
		mkRule(domain.Monday, "09:00", "12:00"),
	}
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, loc) // понедельник

	// Ровно today+7 дней - граница включительно
	boundary := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)
	assert.True(t, isDateSelectable(boundary, rules, nil, 0, 7, now, loc))

	// На день дальше - за горизонтом
	beyond := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)
	assert.False(t, isDateSelectable(beyond, rules, nil, 0, 7, now, loc))
}

func TestIsDateSelectable_TenantTimezoneWeekday(t *testing.T) {
	// В Сиднее уже суббота 17-е, хотя по UTC еще пятница 16-е
	sydney, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	now := time.Date(2026, 1, 16, 15, 0, 0, 0, time.UTC)

	rules := []*domain.AvailabilityRule{
		mkRule(domain.Friday, "09:00", "17:00"),
		mkRule(domain.Saturday, "09:00", "17:00"),
	}

	// Пятница 16-е в таймзоне тенанта уже прошла
	friday := time.Date(2026, 1, 16, 0, 0, 0, 0, sydney)
	assert.False(t, isDateSelectable(friday, rules, nil, 0, 90, now, sydney))

	// Суббота 17-е - сегодняшний день тенанта
	saturday := time.Date(2026, 1, 17, 0, 0, 0, 0, sydney)
	assert.True(t, isDateSelectable(saturday, rules, nil, 0, 90, now, sydney))
}

func TestBuildMonthCalendar_GridAlignment(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 2, 10, 8, 0, 0, 0, loc)
	rules := []*domain.AvailabilityRule{mkRule(domain.Monday, "09:00", "12:00")}

	// Февраль 2026: 1-е - воскресенье, 28-е - суббота, сетка без хвостов
	feb := buildMonthCalendar(2026, 2, rules, nil, 0, 90, now, loc)
	require.Len(t, feb, 28)
	for _, d := range feb {
		assert.True(t, d.InMonth)
	}

	// Март 2026: 31-е - вторник, сетка дополняется до субботы 4 апреля
	mar := buildMonthCalendar(2026, 3, rules, nil, 0, 90, now, loc)
	require.Len(t, mar, 35)

	assert.Equal(t, domain.Sunday, mar[0].DayOfWeek)
	assert.Equal(t, domain.Saturday, mar[len(mar)-1].DayOfWeek)

	for _, d := range mar[31:] {
		assert.False(t, d.InMonth)
		assert.False(t, d.IsSelectable, "дни чужого месяца не выбираются")
	}
}

func TestBuildMonthCalendar_TodayFlag(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, loc)

	days := buildMonthCalendar(2026, 3, nil, nil, 0, 90, now, loc)

	var todays int
	for _, d := range days {
		if d.IsToday {
			todays++
			assert.Equal(t, 10, d.Date.Day())
		}
		// Без правил доступности ни один день не выбирается
		assert.False(t, d.IsSelectable)
	}
	assert.Equal(t, 1, todays)
}
