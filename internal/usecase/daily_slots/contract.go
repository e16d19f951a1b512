package daily_slots

import (
	"context"
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetAllWithFilter(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, error)
}

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetHoursByWeekday(ctx context.Context, businessID int64, dayOfWeek int) (*domain.OpeningHours, error)
	GetHolidayByDate(ctx context.Context, businessID int64, date time.Time) (*domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
