package domain

import (
	"fmt"
	"strings"
	"time"
)

// DayOfWeek день недели как имя в нижнем регистре
// Правила доступности в хранилище привязаны к имени дня, а не к индексу;
// перечисляемый тип исключает ошибки регистра и локали при сопоставлении
type DayOfWeek string

const (
	Sunday    DayOfWeek = "sunday"
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
)

// ParseDayOfWeek парсит имя дня недели (без учета регистра)
func ParseDayOfWeek(s string) (DayOfWeek, error) {
	d := DayOfWeek(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return d, nil
	default:
		return "", fmt.Errorf("invalid day of week: %q", s)
	}
}

// DayOfWeekFromTime возвращает день недели для момента времени
// Момент должен быть уже переведён в таймзону тенанта, иначе возможна
// ошибка на день возле полуночи
func DayOfWeekFromTime(t time.Time) DayOfWeek {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// String возвращает имя дня недели
func (d DayOfWeek) String() string {
	return string(d)
}
