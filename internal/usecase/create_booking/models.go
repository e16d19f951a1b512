package create_booking

import (
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	BusinessID int64                // ID бизнеса
	ServiceID  int64                // ID услуги
	CustomerID int64                // ID клиента
	StartAt    time.Time            // Запрошенное время начала (UTC)
	Status     domain.BookingStatus // Начальный статус (обычно pending)
	Notes      *string              // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
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
