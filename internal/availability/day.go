package availability

import (
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

// DateKey форматирует дату в ключ YYYY-MM-DD для индексации множеств и счетчиков
func DateKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// ForDay вычисляет доступность одного дня месячного календаря.
// День закрыт, если он раньше сегодняшней даты, попадает на праздник
// или для его дня недели не заданы рабочие часы. Для открытого дня
// hasFreeSlots сравнивает число подтвержденных бронирований с емкостью сетки.
func ForDay(
	date time.Time,
	today time.Time,
	holidays map[string]bool,
	weekHours map[int]domain.OpeningHours,
	durationMin int,
	bookedCounts map[string]int,
) domain.DayAvailability {
	closed := domain.DayAvailability{Day: date.Day(), IsOpen: false, HasFreeSlots: false}

	todayDate := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if date.Before(todayDate) {
		return closed
	}

	if holidays[DateKey(date)] {
		return closed
	}

	hours, ok := weekHours[ISOWeekday(date)]
	if !ok {
		return closed
	}

	capacity, err := Capacity(hours, durationMin)
	if err != nil {
		return closed
	}

	booked := bookedCounts[DateKey(date)]

	return domain.DayAvailability{
		Day:          date.Day(),
		IsOpen:       true,
		HasFreeSlots: booked < capacity,
	}
}
