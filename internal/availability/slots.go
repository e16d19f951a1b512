package availability

import (
	"time"

	"github.com/smartappt/booking-service/internal/domain"
	"github.com/smartappt/booking-service/pkg/types"
)

// Grid генерирует упорядоченную сетку слотов для рабочего окна дня.
// Слоты идут от времени открытия с фиксированным шагом durationMin;
// последний слот - тот, который целиком помещается до закрытия.
// Возвращает пустую сетку, если окно короче длительности услуги;
// слот, пересекающий полночь, просто не помещается.
func Grid(hours domain.OpeningHours, durationMin int) ([]types.TimeString, error) {
	slots := make([]types.TimeString, 0)
	if durationMin <= 0 {
		return slots, nil
	}

	openMin, err := hours.OpenTime.Minutes()
	if err != nil {
		return nil, err
	}
	closeMin, err := hours.CloseTime.Minutes()
	if err != nil {
		return nil, err
	}

	for m := openMin; m+durationMin <= closeMin; m += durationMin {
		slot, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// Capacity возвращает емкость дня: floor((close - open) / duration)
func Capacity(hours domain.OpeningHours, durationMin int) (int, error) {
	if durationMin <= 0 {
		return 0, nil
	}

	openMin, err := hours.OpenTime.Minutes()
	if err != nil {
		return 0, err
	}
	closeMin, err := hours.CloseTime.Minutes()
	if err != nil {
		return 0, err
	}

	if closeMin <= openMin {
		return 0, nil
	}
	return (closeMin - openMin) / durationMin, nil
}

// ISOWeekday возвращает день недели в ISO-нумерации: понедельник=1 .. воскресенье=7
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday())+6)%7 + 1
}

// Window возвращает абсолютные моменты открытия и закрытия на дату момента start
func Window(hours domain.OpeningHours, start time.Time) (time.Time, time.Time, error) {
	openMin, err := hours.OpenTime.Minutes()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	closeMin, err := hours.CloseTime.Minutes()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	openAt := midnight.Add(time.Duration(openMin) * time.Minute)
	closeAt := midnight.Add(time.Duration(closeMin) * time.Minute)
	return openAt, closeAt, nil
}

// WindowContains проверяет, что интервал [start, end] целиком лежит
// в рабочем окне дня
func WindowContains(hours domain.OpeningHours, start, end time.Time) (bool, error) {
	openAt, closeAt, err := Window(hours, start)
	if err != nil {
		return false, err
	}
	return !start.Before(openAt) && !end.After(closeAt), nil
}

// OnGridBoundary проверяет, что start попадает ровно на границу сетки слотов:
// смещение от открытия должно быть целым числом минут, кратным durationMin
func OnGridBoundary(hours domain.OpeningHours, start time.Time, durationMin int) (bool, error) {
	if durationMin <= 0 {
		return false, nil
	}

	openAt, _, err := Window(hours, start)
	if err != nil {
		return false, err
	}

	offset := start.Sub(openAt)
	if offset < 0 {
		return false, nil
	}
	if offset%time.Minute != 0 {
		return false, nil
	}
	return int(offset/time.Minute)%durationMin == 0, nil
}
