package create_booking

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// Сообщения об ошибках валидации формы
const (
	MsgGuestNameRequired = "Укажите имя"
	MsgGuestNameLength   = "Имя должно содержать от 2 до 100 символов"
	MsgGuestNameChars    = "Имя может содержать только буквы, пробелы, дефисы и апострофы"

	MsgGuestEmailRequired = "Укажите email"
	MsgGuestEmailInvalid  = "Некорректный email"
	MsgGuestEmailTooLong  = "Email не должен превышать 255 символов"

	MsgGuestPhoneInvalid = "Некорректный номер телефона"
	MsgGuestPhoneDigits  = "Номер телефона должен содержать от 10 до 15 цифр"

	MsgNotesTooLong = "Заметки не должны превышать 1000 символов"

	MsgDateRequired = "Укажите дату"
	MsgDateInvalid  = "Некорректная дата"
	MsgDateInPast   = "Дата не может быть в прошлом"

	MsgStartTimeRequired = "Укажите время начала"
	MsgStartTimeInvalid  = "Некорректное время начала, ожидается формат ЧЧ:ММ"
	MsgEndTimeRequired   = "Укажите время окончания"
	MsgEndTimeInvalid    = "Некорректное время окончания, ожидается формат ЧЧ:ММ"
	MsgEndBeforeStart    = "Время окончания должно быть позже времени начала"
)

var (
	// Буквы любого алфавита, пробелы, дефисы и апострофы
	guestNameRegexp = regexp.MustCompile(`^[\p{L} '-]+$`)

	// Форма local@domain.tld без пробелов
	guestEmailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// Цифры, скобки, пробелы, точки, дефисы и ведущий плюс
	guestPhoneRegexp = regexp.MustCompile(`^\+?[0-9()\s.-]+$`)
)

// validateForm применяет все правила валидации формы и собирает нарушения
// в map поле -> сообщение. Правила независимы: валидатор никогда не
// останавливается на первом нарушении, UI показывает все ошибки сразу.
// Кросс-проверка сроков бронирования выполняется только если дата и время
// начала прошли собственные проверки
func validateForm(req *Request, minAdvanceHours, maxAdvanceDays int, now time.Time, loc *time.Location) map[string]string {
	errs := make(map[string]string)

	validateGuestName(req.GuestName, errs)
	validateGuestEmail(req.GuestEmail, errs)
	validateGuestPhone(req.GuestPhone, errs)
	validateNotes(req.Notes, errs)

	day := validateBookingDate(req.BookingDate, now, loc, errs)
	start := validateTimes(req.StartTime, req.EndTime, errs)

	if _, bad := errs["booking_date"]; bad {
		return errs
	}
	if _, bad := errs["start_time"]; bad {
		return errs
	}

	validateAdvanceBooking(day, start, minAdvanceHours, maxAdvanceDays, now, loc, errs)

	return errs
}

func validateGuestName(name string, errs map[string]string) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		errs["guest_name"] = MsgGuestNameRequired
		return
	}

	length := utf8.RuneCountInString(trimmed)
	if length < domain.MinGuestNameLength || length > domain.MaxGuestNameLength {
		errs["guest_name"] = MsgGuestNameLength
		return
	}

	if !guestNameRegexp.MatchString(trimmed) {
		errs["guest_name"] = MsgGuestNameChars
	}
}

func validateGuestEmail(email string, errs map[string]string) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		errs["guest_email"] = MsgGuestEmailRequired
		return
	}

	if len(trimmed) > domain.MaxGuestEmailLength {
		errs["guest_email"] = MsgGuestEmailTooLong
		return
	}

	if !guestEmailRegexp.MatchString(trimmed) {
		errs["guest_email"] = MsgGuestEmailInvalid
	}
}

func validateGuestPhone(phone *string, errs map[string]string) {
	// Телефон опционален
	if phone == nil || strings.TrimSpace(*phone) == "" {
		return
	}

	trimmed := strings.TrimSpace(*phone)
	if !guestPhoneRegexp.MatchString(trimmed) {
		errs["guest_phone"] = MsgGuestPhoneInvalid
		return
	}

	digits := 0
	for _, r := range trimmed {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < domain.MinGuestPhoneDigits || digits > domain.MaxGuestPhoneDigits {
		errs["guest_phone"] = MsgGuestPhoneDigits
	}
}

func validateNotes(notes *string, errs map[string]string) {
	if notes == nil {
		return
	}
	if utf8.RuneCountInString(*notes) > domain.MaxNotesLength {
		errs["notes"] = MsgNotesTooLong
	}
}

// validateBookingDate возвращает разобранную дату (tenant-local полночь)
// либо нулевое время при нарушении
func validateBookingDate(raw string, now time.Time, loc *time.Location, errs map[string]string) time.Time {
	if strings.TrimSpace(raw) == "" {
		errs["booking_date"] = MsgDateRequired
		return time.Time{}
	}

	day, err := time.ParseInLocation(domain.DateFormat, strings.TrimSpace(raw), loc)
	if err != nil {
		errs["booking_date"] = MsgDateInvalid
		return time.Time{}
	}

	if domain.IsDateInPast(day, now.In(loc)) {
		errs["booking_date"] = MsgDateInPast
		return time.Time{}
	}

	return day
}

// validateTimes возвращает разобранное время начала либо пустую строку
func validateTimes(rawStart, rawEnd string, errs map[string]string) types.TimeString {
	start := types.TimeString(strings.TrimSpace(rawStart))
	end := types.TimeString(strings.TrimSpace(rawEnd))

	startOK := true
	if start.IsZero() {
		errs["start_time"] = MsgStartTimeRequired
		startOK = false
	} else if err := start.Validate(); err != nil {
		errs["start_time"] = MsgStartTimeInvalid
		startOK = false
	}

	endOK := true
	if end.IsZero() {
		errs["end_time"] = MsgEndTimeRequired
		endOK = false
	} else if err := end.Validate(); err != nil {
		errs["end_time"] = MsgEndTimeInvalid
		endOK = false
	}

	// Ночных слотов нет: интервал лежит в пределах одного дня
	if startOK && endOK && !end.IsAfter(start) {
		errs["end_time"] = MsgEndBeforeStart
	}

	if !startOK {
		return ""
	}
	return start
}

// validateAdvanceBooking повторно проверяет min/max сроки бронирования на
// момент отправки формы: между генерацией слотов и отправкой проходит время.
// Из двух сообщений может сработать только одно: число часов до начала не
// бывает одновременно меньше минимума и больше максимума
func validateAdvanceBooking(day time.Time, start types.TimeString, minAdvanceHours, maxAdvanceDays int, now time.Time, loc *time.Location, errs map[string]string) {
	instant := start.OnDate(day, loc)
	hoursUntil := instant.Sub(now).Hours()

	if hoursUntil < float64(minAdvanceHours) {
		errs["advance_booking"] = minAdvanceMessage(minAdvanceHours)
		return
	}

	if hoursUntil > float64(maxAdvanceDays)*24 {
		errs["advance_booking"] = fmt.Sprintf("Бронирование возможно не более чем за %d дн. вперёд", maxAdvanceDays)
	}
}

// minAdvanceMessage формулирует минимальный срок в часах, если он меньше
// суток, иначе в целых днях
func minAdvanceMessage(minAdvanceHours int) string {
	if minAdvanceHours < 24 {
		return fmt.Sprintf("Бронирование возможно не менее чем за %d ч. до начала", minAdvanceHours)
	}
	return fmt.Sprintf("Бронирование возможно не менее чем за %d дн. до начала", minAdvanceHours/24)
}
