package add_service

import (
	"context"

	"github.com/smartappt/booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	AddService(ctx context.Context, businessID int64, req *models.AddServiceRequest) (*models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
