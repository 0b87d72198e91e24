package get_calendar

import (
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
)

// isDateSelectable решает, показывать ли дату кликабельной в календаре
//
// Проверка минимального срока бронирования здесь работает на уровне дня:
// дата отклоняется только если ВЕСЬ день раньше порога now+minAdvanceHours.
// Это намеренно пропускает даты, у которых ранние слоты уже недоступны -
// иначе дата с валидными вечерними слотами пропала бы из календаря целиком.
// Фильтрация на уровне отдельных слотов происходит в генераторе слотов
func isDateSelectable(
	date time.Time,
	rules []*domain.AvailabilityRule,
	blackouts []*domain.BlackoutRange,
	minAdvanceHours int,
	maxAdvanceDays int,
	now time.Time,
	loc *time.Location,
) bool {
	nowLocal := now.In(loc)
	today := domain.DateOnly(nowLocal)

	// Нормализуем дату к полуночи в таймзоне тенанта
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	// Прошедшие даты не выбираются независимо от правил
	if day.Before(today) {
		return false
	}

	// Конец дня - полночь следующего дня в таймзоне тенанта
	earliestBookable := nowLocal.Add(time.Duration(minAdvanceHours) * time.Hour)
	endOfDay := day.AddDate(0, 0, 1)
	if endOfDay.Before(earliestBookable) {
		return false
	}

	latestBookable := today.AddDate(0, 0, maxAdvanceDays)
	if day.After(latestBookable) {
		return false
	}

	// День недели без единого окна доступности
	if len(domain.RulesForDay(rules, domain.DayOfWeekFromTime(day))) == 0 {
		return false
	}

	// Попадание в любой blackout-интервал закрывает дату полностью
	if domain.IsBlackedOut(day, blackouts) {
		return false
	}

	return true
}

// buildMonthCalendar строит недельную сетку месяца для date picker'а
// Сетка начинается с воскресенья недели, содержащей 1-е число, и кончается
// субботой недели с последним числом; дни соседних месяцев получают
// InMonth=false и никогда не помечаются выбираемыми
func buildMonthCalendar(
	year int,
	month int,
	rules []*domain.AvailabilityRule,
	blackouts []*domain.BlackoutRange,
	minAdvanceHours int,
	maxAdvanceDays int,
	now time.Time,
	loc *time.Location,
) []domain.CalendarDay {
	nowLocal := now.In(loc)

	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
	gridEnd := lastOfMonth.AddDate(0, 0, int(time.Saturday)-int(lastOfMonth.Weekday()))

	days := make([]domain.CalendarDay, 0, 42)
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		inMonth := d.Month() == time.Month(month) && d.Year() == year

		days = append(days, domain.CalendarDay{
			Date:         d,
			DayOfWeek:    domain.DayOfWeekFromTime(d),
			IsSelectable: inMonth && isDateSelectable(d, rules, blackouts, minAdvanceHours, maxAdvanceDays, now, loc),
			IsToday:      domain.SameDay(d, nowLocal),
			InMonth:      inMonth,
		})
	}

	return days
}
