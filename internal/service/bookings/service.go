package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartappt/booking-service/internal/domain"
	bookingRepo "github.com/smartappt/booking-service/internal/infra/storage/booking"
	"github.com/smartappt/booking-service/internal/service/bookings/models"
	"github.com/smartappt/booking-service/pkg/ptr"
)

// Лимиты пагинации. История клиента отрезается на 100 включительно:
// skip=100 и take=100 уже отклоняются.
const (
	maxMyPageSize    = 100
	maxListSkip      = 1000
	maxListPageSize  = 1000
	maxDailyPageSize = 500
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID.
// Клиент видит только собственные бронирования.
func (s *Service) GetByID(ctx context.Context, id int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%d", id, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("GetByID: access denied for customer=%d to booking id=%d", customerID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetMyBookings получает историю бронирований клиента с пагинацией.
// Страница ограничена maxMyPageSize, граница отклоняется включительно.
func (s *Service) GetMyBookings(ctx context.Context, req *models.GetMyBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetMyBookings: customer=%d, skip=%d, take=%d", req.CustomerID, req.Skip, req.Take)

	if req.CustomerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}
	if req.Skip < 0 || req.Take <= 0 {
		return nil, fmt.Errorf("%w: skip must be non-negative and take positive", ErrInvalidInput)
	}
	if req.Skip >= maxMyPageSize || req.Take >= maxMyPageSize {
		s.logger.Warn("GetMyBookings: page bounds rejected for customer=%d (skip=%d, take=%d)",
			req.CustomerID, req.Skip, req.Take)
		return nil, fmt.Errorf("%w: skip and take must be below %d", ErrInvalidInput, maxMyPageSize)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetMyBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetAllWithFilter(ctx, domain.BookingFilter{
		CustomerID: ptr.Ptr(req.CustomerID),
		Status:     domainStatus,
		Skip:       req.Skip,
		Take:       req.Take,
	})
	if err != nil {
		s.logger.Error("GetMyBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetMyBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMyBookings: fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBusinessBookings получает бронирования бизнеса с пагинацией.
// В отличие от клиентской истории, верхняя граница take включена: take=1000 допустим.
func (s *Service) GetBusinessBookings(ctx context.Context, req *models.GetBusinessBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetBusinessBookings: business=%d, skip=%d, take=%d", req.BusinessID, req.Skip, req.Take)

	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.Skip < 0 || req.Skip >= maxListSkip {
		return nil, fmt.Errorf("%w: skip must be in range 0-%d", ErrInvalidInput, maxListSkip-1)
	}
	if req.Take <= 0 || req.Take > maxListPageSize {
		return nil, fmt.Errorf("%w: take must be in range 1-%d", ErrInvalidInput, maxListPageSize)
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetBusinessBookings: invalid status=%s for business=%d", *req.Status, req.BusinessID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetAllWithFilter(ctx, domain.BookingFilter{
		BusinessID: ptr.Ptr(req.BusinessID),
		Status:     domainStatus,
		Skip:       req.Skip,
		Take:       req.Take,
	})
	if err != nil {
		s.logger.Error("GetBusinessBookings: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetBusinessBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBusinessBookings: fetched %d bookings for business=%d", len(bookings), req.BusinessID)
	return models.FromDomainBookingList(bookings), nil
}

// GetDailyBookings получает бронирования бизнеса на календарную дату
// вместе с краткими карточками клиентов. Карточки загружаются одним запросом.
func (s *Service) GetDailyBookings(ctx context.Context, req *models.GetDailyBookingsRequest) (*models.DailyBookingListResponse, error) {
	s.logger.Info("GetDailyBookings: business=%d, date=%s, take=%d",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.Take)

	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Take <= 0 || req.Take > maxDailyPageSize {
		return nil, fmt.Errorf("%w: take must be in range 1-%d", ErrInvalidInput, maxDailyPageSize)
	}

	bookings, err := s.bookingRepo.GetAllWithFilter(ctx, domain.BookingFilter{
		BusinessID: ptr.Ptr(req.BusinessID),
		Date:       ptr.Ptr(req.Date),
		Take:       req.Take,
	})
	if err != nil {
		s.logger.Error("GetDailyBookings: repository error for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetDailyBookings - repository error: %v", ErrInternal, err)
	}

	customerIDs := make([]int64, 0, len(bookings))
	seen := make(map[int64]bool, len(bookings))
	for _, b := range bookings {
		if !seen[b.CustomerID] {
			seen[b.CustomerID] = true
			customerIDs = append(customerIDs, b.CustomerID)
		}
	}

	customers, err := s.customerRepo.GetByIDs(ctx, customerIDs)
	if err != nil {
		s.logger.Error("GetDailyBookings: failed to load customers for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: GetDailyBookings - failed to load customers: %v", ErrInternal, err)
	}

	resp := &models.DailyBookingListResponse{
		Date:     req.Date.Format(domain.DateFormat),
		Bookings: make([]models.DailyBookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		item := models.DailyBookingResponse{
			BookingResponse: *models.FromDomainBooking(b),
			Customer:        models.FromDomainCustomerShort(customers[b.CustomerID]),
		}
		resp.Bookings = append(resp.Bookings, item)
	}

	s.logger.Info("GetDailyBookings: fetched %d bookings for business=%d", len(resp.Bookings), req.BusinessID)
	return resp, nil
}

// Decide применяет решение персонала бизнеса к заявке на бронирование.
// Решение может принять только бизнес, которому принадлежит заявка.
//
// Подтверждение уже подтвержденной заявки - успешный no-op, подтверждение
// отмененной - ошибка ErrAlreadyCanceled. Отмена идемпотентна: повторная
// отмена отвечает успехом без записи в БД.
func (s *Service) Decide(ctx context.Context, businessID, bookingID int64, action models.DecisionAction) error {
	s.logger.Info("Decide: business=%d, booking id=%d, action=%s", businessID, bookingID, action)

	if businessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Decide: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Decide: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
	}

	if booking.BusinessID != businessID {
		s.logger.Warn("Decide: booking id=%d belongs to business=%d, not business=%d",
			bookingID, booking.BusinessID, businessID)
		return fmt.Errorf("%w: booking belongs to another business", ErrValidation)
	}

	switch action {
	case models.ActionConfirm:
		if booking.IsConfirmed() {
			s.logger.Info("Decide: booking id=%d is already confirmed", bookingID)
			return nil
		}
		if booking.IsCancelled() {
			s.logger.Warn("Decide: booking id=%d is cancelled, cannot confirm", bookingID)
			return ErrAlreadyCanceled
		}
		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
			s.logger.Error("Decide: failed to confirm booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Decide - failed to confirm: %v", ErrInternal, err)
		}
		s.logger.Info("Decide: booking id=%d confirmed", bookingID)
		return nil

	case models.ActionCancel:
		if booking.IsCancelled() {
			s.logger.Info("Decide: booking id=%d is already cancelled", bookingID)
			return nil
		}
		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
			s.logger.Error("Decide: failed to cancel booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Decide - failed to cancel: %v", ErrInternal, err)
		}
		s.logger.Info("Decide: booking id=%d cancelled", bookingID)
		return nil

	default:
		s.logger.Warn("Decide: unknown action=%s for booking id=%d", action, bookingID)
		return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}
}

// Cancel отменяет бронирование по запросу клиента.
// Клиент может отменить только собственное бронирование. Повторная отмена
// отвечает успехом без записи в БД.
func (s *Service) Cancel(ctx context.Context, bookingID int64, customerID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by customer=%d", bookingID, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("Cancel: access denied for customer=%d to booking id=%d", customerID, bookingID)
		return ErrAccessDenied
	}

	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d is already cancelled", bookingID)
		return nil
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Delete физически удаляет бронирование из истории.
// Клиент может удалить только собственное бронирование.
func (s *Service) Delete(ctx context.Context, bookingID int64, customerID int64) error {
	s.logger.Info("Delete: deleting booking id=%d by customer=%d", bookingID, customerID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("Delete: access denied for customer=%d to booking id=%d", customerID, bookingID)
		return ErrAccessDenied
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	return nil
}
