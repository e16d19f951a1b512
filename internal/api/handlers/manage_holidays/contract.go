package manage_holidays

import (
	"context"
	"time"

	"github.com/smartappt/booking-service/internal/service/business/models"
)

type BusinessService interface {
	AddHoliday(ctx context.Context, businessID int64, req *models.AddHolidayRequest) (*models.HolidayResponse, error)
	GetHolidays(ctx context.Context, businessID int64, from, to time.Time) (*models.HolidayListResponse, error)
	DeleteHoliday(ctx context.Context, businessID int64, rawDate string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
