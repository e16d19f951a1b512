package get_business

import (
	"context"

	"github.com/smartappt/booking-service/internal/service/business/models"
)

type BusinessService interface {
	GetByID(ctx context.Context, id int64) (*models.BusinessResponse, error)
	GetWeekSchedule(ctx context.Context, businessID int64) (*models.WeekScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
