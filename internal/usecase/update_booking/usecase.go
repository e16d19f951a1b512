package update_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smartappt/booking-service/internal/availability"
	"github.com/smartappt/booking-service/internal/domain"
	bookingRepo "github.com/smartappt/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/smartappt/booking-service/internal/infra/storage/schedule"
	"github.com/smartappt/booking-service/pkg/ptr"
)

// UseCase use case для переноса бронирования на другое время
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет перенос бронирования.
//
// Конвейер проверок повторяет создание бронирования с двумя отличиями:
// переносить может только владелец, а при проверке занятости слота
// собственное бронирование исключается из скана.
// Время вне рабочего окна здесь считается отсутствием рабочих часов.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: booking=%d, customer=%d, startAt=%s",
		req.BookingID, req.CustomerID, req.StartAt.Format(domain.DateFormat+" 15:04:05"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время должно быть в будущем; проверка идет по исходному значению,
	// дробные секунды отбрасываются только после нее
	now := uc.timeProvider.Now().UTC()
	if !req.StartAt.After(now) {
		uc.logger.Warn("UpdateBooking: startAt %s is not in the future", req.StartAt)
		return nil, fmt.Errorf("%w: booking time must be in the future", ErrValidation)
	}

	startAt := req.StartAt.UTC().Truncate(time.Second)

	// 3. Получаем бронирование и проверяем владельца
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.CustomerID != req.CustomerID {
		uc.logger.Warn("UpdateBooking: booking id=%d belongs to customer id=%d, not id=%d",
			booking.ID, booking.CustomerID, req.CustomerID)
		return nil, fmt.Errorf("%w: booking belongs to another customer", ErrValidation)
	}

	// 4. Проверяем услугу: существует и активна
	service, err := uc.catalogRepo.GetByID(ctx, booking.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("UpdateBooking: service id=%d not found", booking.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get service id=%d: %v", booking.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.IsActive {
		uc.logger.Warn("UpdateBooking: service id=%d is inactive", service.ID)
		return nil, ErrServiceInactive
	}

	// 5. Вычисляем новый конец слота
	endAt := startAt.Add(service.Duration())

	// 6. Проверки расписания и занятости в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 6.1. Праздничный день
		_, err := uc.scheduleRepo.GetHolidayByDate(txCtx, booking.BusinessID, startAt)
		if err == nil {
			uc.logger.Warn("UpdateBooking: business id=%d has a holiday on %s",
				booking.BusinessID, startAt.Format(domain.DateFormat))
			return ErrHoliday
		}
		if !errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
			uc.logger.Error("UpdateBooking: failed to check holiday: %v", err)
			return fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
		}

		// 6.2. Рабочие часы на день недели
		hours, err := uc.scheduleRepo.GetHoursByWeekday(txCtx, booking.BusinessID, availability.ISOWeekday(startAt))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
				uc.logger.Warn("UpdateBooking: no working hours for business id=%d on weekday %d",
					booking.BusinessID, availability.ISOWeekday(startAt))
				return ErrNoWorkingHours
			}
			uc.logger.Error("UpdateBooking: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		// 6.3. Слот целиком внутри рабочего окна
		inside, err := availability.WindowContains(*hours, startAt, endAt)
		if err != nil {
			return fmt.Errorf("%w: failed to check working window: %v", ErrInternal, err)
		}
		if !inside {
			uc.logger.Warn("UpdateBooking: slot %s-%s is outside working window %s-%s",
				startAt.Format(domain.TimeFormat), endAt.Format(domain.TimeFormat), hours.OpenTime, hours.CloseTime)
			return ErrNoWorkingHours
		}

		// 6.4. Начало слота должно попадать на границу сетки
		aligned, err := availability.OnGridBoundary(*hours, startAt, service.DurationMin)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot alignment: %v", ErrInternal, err)
		}
		if !aligned {
			uc.logger.Warn("UpdateBooking: slot %s is not aligned to the %d-minute grid",
				startAt.Format(domain.TimeFormat), service.DurationMin)
			return fmt.Errorf("%w: booking time is not aligned to the slot grid", ErrValidation)
		}

		// 6.5. Слот не занят другим подтвержденным бронированием
		confirmed := domain.StatusConfirmed
		taken, err := uc.bookingRepo.GetAllWithFilter(txCtx, domain.BookingFilter{
			ServiceID: ptr.Ptr(booking.ServiceID),
			Status:    &confirmed,
			Date:      ptr.Ptr(startAt),
		})
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to check slot occupancy: %v", err)
			return fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
		}
		for _, b := range taken {
			if b.ID != booking.ID && b.StartAtUtc.Equal(startAt) {
				uc.logger.Warn("UpdateBooking: slot %s is already taken by booking id=%d",
					startAt.Format(domain.TimeFormat), b.ID)
				return ErrAlreadyExists
			}
		}

		// 6.6. Сохраняем новое время
		booking.StartAtUtc = startAt
		booking.EndAtUtc = endAt
		if req.Notes != nil {
			booking.Notes = req.Notes
		}

		if err := uc.bookingRepo.Update(txCtx, booking); err != nil {
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateBooking: successfully moved booking id=%d to %s",
		booking.ID, startAt.Format(domain.DateFormat+" "+domain.TimeFormat))

	return &Response{
		ID:         booking.ID,
		BusinessID: booking.BusinessID,
		ServiceID:  booking.ServiceID,
		CustomerID: booking.CustomerID,
		StartAtUtc: booking.StartAtUtc,
		EndAtUtc:   booking.EndAtUtc,
		Status:     string(booking.Status),
		Notes:      booking.Notes,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
