package set_opening_hours

import (
	"context"

	"github.com/smartappt/booking-service/internal/service/business/models"
)

type BusinessService interface {
	SetOpeningHours(ctx context.Context, businessID int64, req *models.SetOpeningHoursRequest) (*models.OpeningHoursResponse, error)
	DeleteOpeningHours(ctx context.Context, businessID int64, dayOfWeek int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
