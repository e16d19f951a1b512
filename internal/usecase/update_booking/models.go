package update_booking

import (
	"time"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID  int64     // ID бронирования
	CustomerID int64     // ID клиента-владельца
	StartAt    time.Time // Новое время начала (UTC)
	Notes      *string   // Новые заметки (nil - оставить прежние)
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID         int64     // ID бронирования
	BusinessID int64     // ID бизнеса
	ServiceID  int64     // ID услуги
	CustomerID int64     // ID клиента
	StartAtUtc time.Time // Время начала (UTC)
	EndAtUtc   time.Time // Время окончания (UTC)
	Status     string    // Статус бронирования
	Notes      *string   // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
