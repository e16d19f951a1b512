package register_customer

import (
	"context"

	"github.com/smartappt/booking-service/internal/service/customers/models"
)

type CustomerService interface {
	Register(ctx context.Context, req *models.RegisterCustomerRequest) (*models.CustomerResponse, error)
	GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
