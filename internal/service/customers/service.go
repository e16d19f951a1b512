package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartappt/booking-service/internal/domain"
	customerRepo "github.com/smartappt/booking-service/internal/infra/storage/customer"
	"github.com/smartappt/booking-service/internal/service/customers/models"
)

// Service сервис для регистрации и просмотра клиентов
type Service struct {
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// Register регистрирует нового клиента
func (s *Service) Register(ctx context.Context, req *models.RegisterCustomerRequest) (*models.CustomerResponse, error) {
	s.logger.Info("RegisterCustomer: name=%s", req.FullName)

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		s.logger.Warn("RegisterCustomer: empty full name")
		return nil, fmt.Errorf("%w: fullName is required", ErrInvalidInput)
	}

	created, err := s.customerRepo.Create(ctx, &domain.Customer{
		FullName: fullName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		s.logger.Error("RegisterCustomer: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterCustomer: created customer id=%d", created.ID)
	return models.FromDomainCustomer(created), nil
}

// GetByID получает профиль клиента
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CustomerResponse, error) {
	s.logger.Info("GetCustomer: id=%d", id)

	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetCustomer: customer id=%d not found", id)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetCustomer: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomer(customer), nil
}
