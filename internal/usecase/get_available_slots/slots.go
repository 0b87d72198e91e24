package get_available_slots

import (
	"time"

	"github.com/IbrahimTareq/masjidaa-booking-service/internal/domain"
	"github.com/IbrahimTareq/masjidaa-booking-service/pkg/types"
)

// generateSlots генерирует упорядоченный список слотов на дату
//
// Окна дня недели объединяются в непересекающиеся интервалы, затем каждое
// окно обходится с шагом duration+buffer. Слот [t, t+duration) попадает в
// выдачу, пока целиком помещается в окно; остаток окна короче длительности
// слота не даёт частичного слота. Слоты не пересекают границы окон.
//
// Недоступные слоты (пересечение с активным бронированием либо нарушение
// минимального срока бронирования) остаются в выдаче с Available=false.
//
// Вся арифметика ведётся в целых минутах от локальной полуночи. Пустые окна
// и некорректная длительность дают пустую выдачу, не ошибку: "сегодня ничего
// не бронируется" - валидный результат
func generateSlots(
	date time.Time,
	rules []*domain.AvailabilityRule,
	durationMinutes int,
	bufferMinutes int,
	bookings []*domain.Booking,
	minAdvanceHours int,
	now time.Time,
	loc *time.Location,
) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0)

	if durationMinutes <= 0 {
		return slots
	}
	if bufferMinutes < 0 {
		bufferMinutes = 0
	}

	// День недели определяется в таймзоне тенанта
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayRules := domain.RulesForDay(rules, domain.DayOfWeekFromTime(day))
	if len(dayRules) == 0 {
		return slots
	}

	windows := make([]domain.TimeRange, 0, len(dayRules))
	for _, r := range dayRules {
		windows = append(windows, r.Window())
	}
	merged := domain.MergeTimeRanges(windows)

	earliestBookable := now.Add(time.Duration(minAdvanceHours) * time.Hour)
	step := durationMinutes + bufferMinutes

	for _, window := range merged {
		startMin := window.Start.Minutes()
		endMin := window.End.Minutes()

		for t := startMin; t+durationMinutes <= endMin; t += step {
			slotStart, err := types.NewTimeStringFromMinutes(t)
			if err != nil {
				break
			}
			slotEnd, err := types.NewTimeStringFromMinutes(t + durationMinutes)
			if err != nil {
				break
			}

			available := !overlapsActiveBooking(t, t+durationMinutes, bookings) &&
				!slotStart.OnDate(day, loc).Before(earliestBookable)

			slots = append(slots, domain.TimeSlot{
				StartTime: slotStart,
				EndTime:   slotEnd,
				Available: available,
			})
		}
	}

	return slots
}

// overlapsActiveBooking проверяет пересечение слота хотя бы с одним активным
// бронированием. Интервалы полуоткрытые: [a, b) и [c, d) пересекаются
// тогда и только тогда, когда a < d && c < b, граничащие интервалы
// пересечением не считаются
func overlapsActiveBooking(slotStartMin, slotEndMin int, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		// Отменённые и отклонённые бронирования освобождают слот
		if !b.OccupiesSlot() {
			continue
		}

		bookingStart := b.StartTime.Minutes()
		bookingEnd := b.EndTime.Minutes()

		if slotStartMin < bookingEnd && bookingStart < slotEndMin {
			return true
		}
	}
	return false
}
