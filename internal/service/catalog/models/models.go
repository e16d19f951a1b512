package models

import (
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

// Request модели

// AddServiceRequest запрос на добавление услуги в каталог
type AddServiceRequest struct {
	Name        string  `json:"name"`
	DurationMin int     `json:"durationMin"`
	Price       float64 `json:"price"`
}

// ListServicesRequest запрос страницы каталога услуг
type ListServicesRequest struct {
	BusinessID int64 `json:"businessId"`
	Skip       int   `json:"skip"`
	Take       int   `json:"take"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          int64   `json:"id"`
	BusinessID  int64   `json:"businessId"`
	Name        string  `json:"name"`
	DurationMin int     `json:"durationMin"`
	Price       float64 `json:"price"`
	IsActive    bool    `json:"isActive"`

	CreatedAtUtc time.Time `json:"createdAtUtc"`
}

// ServiceListResponse ответ со страницей каталога
type ServiceListResponse struct {
	BusinessID int64             `json:"businessId"`
	Services   []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:           s.ID,
		BusinessID:   s.BusinessID,
		Name:         s.Name,
		DurationMin:  s.DurationMin,
		Price:        s.Price,
		IsActive:     s.IsActive,
		CreatedAtUtc: s.CreatedAtUtc,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(businessID int64, services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		BusinessID: businessID,
		Services:   make([]ServiceResponse, 0, len(services)),
	}

	for _, service := range services {
		if serviceResp := FromDomainService(service); serviceResp != nil {
			resp.Services = append(resp.Services, *serviceResp)
		}
	}

	return resp
}
