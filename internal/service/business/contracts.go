package business

import (
	"context"
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

// BusinessRepository интерфейс репозитория бизнесов
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) (*domain.Business, error)
	GetByID(ctx context.Context, id int64) (*domain.Business, error)
	Update(ctx context.Context, business *domain.Business) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	GetHoursByBusinessID(ctx context.Context, businessID int64) ([]*domain.OpeningHours, error)
	UpsertHours(ctx context.Context, hours *domain.OpeningHours) (*domain.OpeningHours, error)
	DeleteHours(ctx context.Context, businessID int64, dayOfWeek int) error
	GetHolidaysInRange(ctx context.Context, businessID int64, from, to time.Time) ([]*domain.Holiday, error)
	CreateHoliday(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error)
	DeleteHoliday(ctx context.Context, businessID int64, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
