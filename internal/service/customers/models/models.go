package models

import (
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

// RegisterCustomerRequest запрос на регистрацию клиента
type RegisterCustomerRequest struct {
	FullName string  `json:"fullName"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// CustomerResponse ответ с данными клиента
type CustomerResponse struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`

	CreatedAtUtc time.Time `json:"createdAtUtc"`
}

// FromDomainCustomer конвертирует domain модель в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}

	return &CustomerResponse{
		ID:           c.ID,
		FullName:     c.FullName,
		Email:        c.Email,
		Phone:        c.Phone,
		CreatedAtUtc: c.CreatedAtUtc,
	}
}
