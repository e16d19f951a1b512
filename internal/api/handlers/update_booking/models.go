package update_booking

import (
	"fmt"
	"time"

	updateBooking "github.com/smartappt/booking-service/internal/usecase/update_booking"
)

// UpdateBookingRequest HTTP request model
type UpdateBookingRequest struct {
	StartAt string  `json:"startAt"` // RFC3339, новое время начала
	Notes   *string `json:"notes,omitempty"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateBookingRequest) ToUseCaseRequest(bookingID, customerID int64) (*updateBooking.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, fmt.Errorf("invalid startAt: %w", err)
	}

	return &updateBooking.Request{
		BookingID:  bookingID,
		CustomerID: customerID,
		StartAt:    startAt,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBooking.Response) *BookingResponse {
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
