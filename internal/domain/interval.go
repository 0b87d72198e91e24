package domain

import (
	"sort"
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// TimeRange полуоткрытый интервал [Start, End) локального времени без даты
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid возвращает true, если начало строго раньше конца
func (r TimeRange) IsValid() bool {
	return r.Start.Minutes() < r.End.Minutes()
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// [a, b) и [c, d) пересекаются тогда и только тогда, когда a < d && c < b;
// граничащие интервалы (b == c) пересечением не считаются
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Minutes() < other.End.Minutes() && other.Start.Minutes() < r.End.Minutes()
}

// MergeTimeRanges объединяет набор окон в непересекающиеся интервалы
// Вход - неупорядоченное множество, возможно с пересечениями и дубликатами;
// пересекающиеся и смежные окна склеиваются. Невалидные окна отбрасываются
func MergeTimeRanges(ranges []TimeRange) []TimeRange {
	valid := make([]TimeRange, 0, len(ranges))
	for _, r := range ranges {
		if r.IsValid() {
			valid = append(valid, r)
		}
	}
	if len(valid) == 0 {
		return nil
	}

	sort.Slice(valid, func(i, j int) bool {
		return valid[i].Start.Minutes() < valid[j].Start.Minutes()
	})

	merged := []TimeRange{valid[0]}
	for _, r := range valid[1:] {
		last := &merged[len(merged)-1]
		if r.Start.Minutes() <= last.End.Minutes() {
			if r.End.Minutes() > last.End.Minutes() {
				last.End = r.End
			}
			continue
		}
		merged = append(merged, r)
	}

	return merged
}

// DateOnly обнуляет компонент времени, сохраняя таймзону
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что два момента относятся к одному календарному дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
func IsDateInPast(date, now time.Time) bool {
	return DateOnly(date).Before(DateOnly(now))
}
