package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	"github.com/smartappt/booking-service/internal/service/catalog/models"
)

// Лимит страницы каталога. Граница отклоняется включительно:
// skip=100 и take=100 уже не проходят.
const maxPageSize = 100

// Service сервис для управления каталогом услуг бизнеса
type Service struct {
	catalogRepo  CatalogRepository
	businessRepo BusinessRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	catalogRepo CatalogRepository,
	businessRepo BusinessRepository,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		businessRepo: businessRepo,
		logger:       logger,
	}
}

// AddService добавляет услугу в каталог бизнеса
func (s *Service) AddService(ctx context.Context, businessID int64, req *models.AddServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("AddService: business=%d, name=%s, duration=%d", businessID, req.Name, req.DurationMin)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("AddService: empty name for business=%d", businessID)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.DurationMin < domain.MinServiceDurationMin {
		s.logger.Warn("AddService: invalid duration=%d for business=%d", req.DurationMin, businessID)
		return nil, fmt.Errorf("%w: durationMin must be at least %d", ErrInvalidInput, domain.MinServiceDurationMin)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("AddService: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("AddService: failed to get business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: AddService - repository error: %v", ErrInternal, err)
	}

	created, err := s.catalogRepo.Create(ctx, &domain.Service{
		BusinessID:  businessID,
		Name:        name,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		IsActive:    true,
	})
	if err != nil {
		s.logger.Error("AddService: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: AddService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddService: created service id=%d for business=%d", created.ID, businessID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	s.logger.Info("GetService: id=%d", id)

	service, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// List получает страницу каталога бизнеса.
// Граница страницы maxPageSize отклоняется включительно.
func (s *Service) List(ctx context.Context, req *models.ListServicesRequest) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: business=%d, skip=%d, take=%d", req.BusinessID, req.Skip, req.Take)

	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.Skip < 0 || req.Take <= 0 {
		return nil, fmt.Errorf("%w: skip must be non-negative and take positive", ErrInvalidInput)
	}
	if req.Skip >= maxPageSize || req.Take >= maxPageSize {
		s.logger.Warn("ListServices: page bounds rejected for business=%d (skip=%d, take=%d)",
			req.BusinessID, req.Skip, req.Take)
		return nil, fmt.Errorf("%w: skip and take must be below %d", ErrInvalidInput, maxPageSize)
	}

	services, err := s.catalogRepo.ListByBusiness(ctx, req.BusinessID, req.Skip, req.Take)
	if err != nil {
		s.logger.Error("ListServices: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services for business=%d", len(services), req.BusinessID)
	return models.FromDomainServiceList(req.BusinessID, services), nil
}

// Deactivate выключает услугу. Операция односторонняя.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("DeactivateService: id=%d", id)

	if err := s.catalogRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeactivateService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeactivateService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeactivateService: deactivated service id=%d", id)
	return nil
}

// Delete физически удаляет услугу из каталога
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteService: id=%d", id)

	if err := s.catalogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("DeleteService: service id=%d not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("DeleteService: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: deleted service id=%d", id)
	return nil
}
