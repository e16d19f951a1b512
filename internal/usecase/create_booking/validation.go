package create_booking

import (
	"fmt"
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if _, ok := domain.ParseBookingStatus(string(req.Status)); !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// normalizeStartAt приводит запрошенное время к UTC и отбрасывает доли секунды.
// Клиенты присылают timestamps с миллисекундами, сетка слотов оперирует целыми минутами.
func normalizeStartAt(startAt time.Time) time.Time {
	return startAt.UTC().Truncate(time.Second)
}

// hasConfirmedAtSameTime проверяет, занят ли слот подтвержденным бронированием.
// excludeID исключает собственное бронирование при переносе (0 - не исключать).
func hasConfirmedAtSameTime(bookings []*domain.Booking, startAt time.Time, excludeID int64) bool {
	for _, b := range bookings {
		if b.ID == excludeID {
			continue
		}
		if b.IsConfirmed() && b.StartAtUtc.Equal(startAt) {
			return true
		}
	}
	return false
}
