package create_booking

import (
	"fmt"
	"time"

	"github.com/smartappt/booking-service/internal/domain"
	createBooking "github.com/smartappt/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BusinessID int64   `json:"businessId"`
	ServiceID  int64   `json:"serviceId"`
	StartAt    string  `json:"startAt"` // RFC3339, например "2026-03-15T10:00:00Z"
	Status     *string `json:"status,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	BusinessID int64   `json:"businessId"`
	ServiceID  int64   `json:"serviceId"`
	CustomerID int64   `json:"customerId"`
	StartAtUtc string  `json:"startAtUtc"`
	EndAtUtc   string  `json:"endAtUtc"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Новое бронирование без явного статуса создается как pending.
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, fmt.Errorf("invalid startAt: %w", err)
	}

	status := domain.StatusPending
	if r.Status != nil {
		parsed, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return nil, fmt.Errorf("unknown status %q", *r.Status)
		}
		status = parsed
	}

	return &createBooking.Request{
		BusinessID: r.BusinessID,
		ServiceID:  r.ServiceID,
		CustomerID: customerID,
		StartAt:    startAt,
		Status:     status,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		BusinessID: resp.BusinessID,
		ServiceID:  resp.ServiceID,
		CustomerID: resp.CustomerID,
		StartAtUtc: resp.StartAtUtc.Format(time.RFC3339),
		EndAtUtc:   resp.EndAtUtc.Format(time.RFC3339),
		Status:     resp.Status,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
