package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reserved time slot for a service
type Booking struct {
	ID         int64
	BusinessID int64
	ServiceID  int64
	CustomerID int64
	StartAtUtc time.Time
	EndAtUtc   time.Time
	Status     BookingStatus
	Notes      *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking occupies its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking is in its terminal state
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsPending returns true if the booking awaits a staff decision
func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

// BookingFilter фильтр для выборки бронирований
type BookingFilter struct {
	BusinessID *int64         // Фильтр по бизнесу (опционально)
	ServiceID  *int64         // Фильтр по услуге (опционально)
	CustomerID *int64         // Фильтр по клиенту (опционально)
	Status     *BookingStatus // Фильтр по статусу (опционально)
	Date       *time.Time     // Фильтр по календарной дате (опционально)
	Skip       int
	Take       int
}

// ValidBookingStatuses список допустимых статусов бронирования
var ValidBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, valid := range ValidBookingStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}
