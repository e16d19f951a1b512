package models

import (
	"errors"
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidAction возвращается при неизвестном решении по заявке
	ErrInvalidAction = errors.New("invalid decision action")
)

// DecisionAction решение персонала по заявке на бронирование
type DecisionAction string

const (
	ActionConfirm DecisionAction = "confirm"
	ActionCancel  DecisionAction = "cancel"
)

// ParseDecisionAction конвертирует строку в DecisionAction с валидацией
func ParseDecisionAction(s string) (DecisionAction, error) {
	switch DecisionAction(s) {
	case ActionConfirm, ActionCancel:
		return DecisionAction(s), nil
	default:
		return "", ErrInvalidAction
	}
}

// Request модели

// GetMyBookingsRequest запрос истории бронирований клиента
type GetMyBookingsRequest struct {
	CustomerID int64   `json:"customerId"`
	Status     *string `json:"status,omitempty"`
	Skip       int     `json:"skip"`
	Take       int     `json:"take"`
}

// GetBusinessBookingsRequest запрос бронирований бизнеса
type GetBusinessBookingsRequest struct {
	BusinessID int64   `json:"businessId"`
	Status     *string `json:"status,omitempty"`
	Skip       int     `json:"skip"`
	Take       int     `json:"take"`
}

// GetDailyBookingsRequest запрос бронирований бизнеса на дату
type GetDailyBookingsRequest struct {
	BusinessID int64     `json:"businessId"`
	Date       time.Time `json:"date"`
	Take       int       `json:"take"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"businessId"`
	ServiceID  int64     `json:"serviceId"`
	CustomerID int64     `json:"customerId"`
	StartAtUtc time.Time `json:"startAtUtc"`
	EndAtUtc   time.Time `json:"endAtUtc"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CustomerShort краткая карточка клиента для дневного списка
type CustomerShort struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Phone    *string `json:"phone,omitempty"`
}

// DailyBookingResponse бронирование с данными клиента
type DailyBookingResponse struct {
	BookingResponse
	Customer *CustomerShort `json:"customer,omitempty"`
}

// DailyBookingListResponse ответ со списком бронирований на день
type DailyBookingListResponse struct {
	Date     string                 `json:"date"` // "2026-03-15"
	Bookings []DailyBookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:         b.ID,
		BusinessID: b.BusinessID,
		ServiceID:  b.ServiceID,
		CustomerID: b.CustomerID,
		StartAtUtc: b.StartAtUtc,
		EndAtUtc:   b.EndAtUtc,
		Status:     string(b.Status),
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainCustomerShort конвертирует клиента в краткую карточку
func FromDomainCustomerShort(c *domain.Customer) *CustomerShort {
	if c == nil {
		return nil
	}

	return &CustomerShort{
		ID:       c.ID,
		FullName: c.FullName,
		Phone:    c.Phone,
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
