package daily_slots

import (
	"time"

	"github.com/smartappt/booking-service/pkg/types"
)

// Request модель запроса свободных слотов на день
type Request struct {
	BusinessID int64     // ID бизнеса-владельца услуги
	ServiceID  int64     // ID услуги
	Date       time.Time // Календарная дата
}

// Response модель ответа со свободными слотами.
// Busy=true означает, что день закрыт целиком: праздник или нет рабочих часов.
type Response struct {
	ServiceID int64              // ID услуги
	Date      time.Time          // Запрошенная дата
	Busy      bool               // День закрыт целиком
	Slots     []types.TimeString // Свободные слоты, отсортированные по времени
}
