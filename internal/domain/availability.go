package domain

import (
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// AvailabilityRule еженедельное повторяющееся окно доступности услуги
// Для одного дня недели может существовать несколько окон (например, утреннее
// и вечернее); окна могут пересекаться - генератор слотов объединяет их
type AvailabilityRule struct {
	ID            int64
	BookingTypeID int64
	DayOfWeek     DayOfWeek
	StartTime     types.TimeString // Локальное время тенанта, без даты
	EndTime       types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window возвращает окно правила как временной интервал
func (r *AvailabilityRule) Window() TimeRange {
	return TimeRange{Start: r.StartTime, End: r.EndTime}
}

// BlackoutRange закрытый интервал календарных дат, в котором бронирование
// невозможно независимо от правил доступности (праздники, ремонт, Рамадан
// и т.п.). Инвариант: StartDate <= EndDate, обе границы включительно
type BlackoutRange struct {
	ID            int64
	BookingTypeID int64
	StartDate     time.Time
	EndDate       time.Time
	Reason        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains возвращает true, если дата попадает в интервал (границы включительно)
// Сравниваются только календарные даты, компонент времени игнорируется
func (b *BlackoutRange) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(b.StartDate)) && !d.After(DateOnly(b.EndDate))
}

// IsBlackedOut возвращает true, если дата попадает хотя бы в один из интервалов
// Принадлежность считается по объединению: пересекающиеся интервалы допустимы
func IsBlackedOut(date time.Time, blackouts []*BlackoutRange) bool {
	for _, b := range blackouts {
		if b.Contains(date) {
			return true
		}
	}
	return false
}

// RulesForDay возвращает правила, действующие в указанный день недели
func RulesForDay(rules []*AvailabilityRule, day DayOfWeek) []*AvailabilityRule {
	matched := make([]*AvailabilityRule, 0)
	for _, r := range rules {
		if r.DayOfWeek == day {
			matched = append(matched, r)
		}
	}
	return matched
}

// CalendarDay проекция одного дня для календаря выбора даты
// Вычисляется на лету, не хранится
type CalendarDay struct {
	Date         time.Time
	DayOfWeek    DayOfWeek
	IsSelectable bool
	IsToday      bool
	InMonth      bool
}
