package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

func tr(start, end string) TimeRange {
	return TimeRange{Start: types.TimeString(start), End: types.TimeString(end)}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"partial overlap", tr("09:00", "10:00"), tr("09:30", "10:30"), true},
		{"contained", tr("09:00", "12:00"), tr("10:00", "11:00"), true},
		{"identical", tr("09:00", "10:00"), tr("09:00", "10:00"), true},
		{"adjacent not overlapping", tr("09:00", "10:00"), tr("10:00", "11:00"), false},
		{"disjoint", tr("09:00", "10:00"), tr("11:00", "12:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMergeTimeRanges(t *testing.T) {
	t.Run("overlapping merged", func(t *testing.T) {
		merged := MergeTimeRanges([]TimeRange{
			tr("10:00", "12:00"),
			tr("09:00", "11:00"),
		})
		require.Len(t, merged, 1)
		assert.Equal(t, tr("09:00", "12:00"), merged[0])
	})

	t.Run("adjacent merged", func(t *testing.T) {
		merged := MergeTimeRanges([]TimeRange{
			tr("09:00", "10:00"),
			tr("10:00", "11:00"),
		})
		require.Len(t, merged, 1)
		assert.Equal(t, tr("09:00", "11:00"), merged[0])
	})

	t.Run("disjoint preserved in order", func(t *testing.T) {
		merged := MergeTimeRanges([]TimeRange{
			tr("14:00", "16:00"),
			tr("09:00", "11:00"),
		})
		require.Len(t, merged, 2)
		assert.Equal(t, tr("09:00", "11:00"), merged[0])
		assert.Equal(t, tr("14:00", "16:00"), merged[1])
	})

	t.Run("contained window absorbed", func(t *testing.T) {
		merged := MergeTimeRanges([]TimeRange{
			tr("09:00", "17:00"),
			tr("10:00", "11:00"),
		})
		require.Len(t, merged, 1)
		assert.Equal(t, tr("09:00", "17:00"), merged[0])
	})

	t.Run("invalid windows dropped", func(t *testing.T) {
		merged := MergeTimeRanges([]TimeRange{
			tr("10:00", "09:00"),
			tr("11:00", "11:00"),
		})
		assert.Nil(t, merged)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, MergeTimeRanges(nil))
	})
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), now))
	// Сегодняшняя дата не считается прошедшей, даже если время дня уже позже
	assert.False(t, IsDateInPast(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), now))
}

func TestBlackoutRange_Contains(t *testing.T) {
	b := &BlackoutRange{
		StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.False(t, b.Contains(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.True(t, b.Contains(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, b.Contains(time.Date(2026, 3, 11, 23, 59, 0, 0, time.UTC)))
	assert.True(t, b.Contains(time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)))
	assert.False(t, b.Contains(time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)))
}

func TestIsBlackedOut(t *testing.T) {
	blackouts := []*BlackoutRange{
		{
			StartDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			StartDate: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
		},
	}

	assert.True(t, IsBlackedOut(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), blackouts))
	assert.True(t, IsBlackedOut(time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC), blackouts))
	assert.False(t, IsBlackedOut(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), blackouts))
	assert.False(t, IsBlackedOut(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), nil))
}

func TestRulesForDay(t *testing.T) {
	rules := []*AvailabilityRule{
		{DayOfWeek: Monday, StartTime: "09:00", EndTime: "12:00"},
		{DayOfWeek: Friday, StartTime: "14:00", EndTime: "16:00"},
		{DayOfWeek: Monday, StartTime: "18:00", EndTime: "20:00"},
	}

	monday := RulesForDay(rules, Monday)
	require.Len(t, monday, 2)
	assert.Equal(t, types.TimeString("09:00"), monday[0].StartTime)
	assert.Equal(t, types.TimeString("18:00"), monday[1].StartTime)

	assert.Empty(t, RulesForDay(rules, Sunday))
}

func TestParseDayOfWeek(t *testing.T) {
	d, err := ParseDayOfWeek("Friday")
	require.NoError(t, err)
	assert.Equal(t, Friday, d)

	d, err = ParseDayOfWeek("  saturday ")
	require.NoError(t, err)
	assert.Equal(t, Saturday, d)

	_, err = ParseDayOfWeek("someday")
	assert.Error(t, err)
}

func TestDayOfWeekFromTime(t *testing.T) {
	// 2026-03-02 - понедельник
	assert.Equal(t, Monday, DayOfWeekFromTime(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Sunday, DayOfWeekFromTime(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
}
