package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartappt/booking-service/internal/availability"
	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	customerRepo "github.com/smartappt/booking-service/internal/infra/storage/customer"
	scheduleRepo "github.com/smartappt/booking-service/internal/infra/storage/schedule"
	"github.com/smartappt/booking-service/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	catalogRepo  CatalogRepository
	customerRepo CustomerRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	catalogRepo CatalogRepository,
	customerRepo CustomerRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		catalogRepo:  catalogRepo,
		customerRepo: customerRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Проверки идут в фиксированном порядке: входные данные, время в будущем,
// клиент, бизнес, услуга, праздник, рабочие часы, рабочее окно, сетка слотов,
// дубликат клиента, занятость слота. Первая провалившаяся проверка
// останавливает конвейер.
//
// Проверка занятости слота и вставка выполняются в одной транзакции,
// но это чтение-потом-запись: две конкурентные заявки на один слот могут
// обе пройти проверку. См. тест на этот сценарий.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, business=%d, service=%d, startAt=%s",
		req.CustomerID, req.BusinessID, req.ServiceID, req.StartAt.Format(domain.DateFormat+" 15:04:05"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Время должно быть в будущем; проверка идет по исходному значению,
	// дробные секунды отбрасываются только после нее
	now := uc.timeProvider.Now().UTC()
	if !req.StartAt.After(now) {
		uc.logger.Warn("CreateBooking: startAt %s is not in the future", req.StartAt)
		return nil, fmt.Errorf("%w: booking time must be in the future", ErrValidation)
	}

	startAt := normalizeStartAt(req.StartAt)

	// 3. Проверяем клиента
	if _, err := uc.customerRepo.GetByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	// 4. Проверяем бизнес
	if _, err := uc.businessRepo.GetByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("CreateBooking: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("CreateBooking: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 5. Проверяем услугу: существует, принадлежит бизнесу, активна
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.BelongsTo(req.BusinessID) {
		uc.logger.Warn("CreateBooking: service id=%d belongs to business id=%d, not id=%d",
			service.ID, service.BusinessID, req.BusinessID)
		return nil, fmt.Errorf("%w: service does not belong to this business", ErrValidation)
	}

	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", service.ID)
		return nil, ErrServiceInactive
	}

	// 6. Вычисляем конец слота
	endAt := startAt.Add(service.Duration())

	var result *domain.Booking

	// 7. Проверки расписания и занятости в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 7.1. Праздничный день закрывает бизнес целиком
		_, err := uc.scheduleRepo.GetHolidayByDate(txCtx, req.BusinessID, startAt)
		if err == nil {
			uc.logger.Warn("CreateBooking: business id=%d has a holiday on %s",
				req.BusinessID, startAt.Format(domain.DateFormat))
			return ErrHoliday
		}
		if !errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
			uc.logger.Error("CreateBooking: failed to check holiday: %v", err)
			return fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
		}

		// 7.2. Рабочие часы на день недели
		hours, err := uc.scheduleRepo.GetHoursByWeekday(txCtx, req.BusinessID, availability.ISOWeekday(startAt))
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
				uc.logger.Warn("CreateBooking: no working hours for business id=%d on weekday %d",
					req.BusinessID, availability.ISOWeekday(startAt))
				return ErrNoWorkingHours
			}
			uc.logger.Error("CreateBooking: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		// 7.3. Слот целиком внутри рабочего окна
		inside, err := availability.WindowContains(*hours, startAt, endAt)
		if err != nil {
			return fmt.Errorf("%w: failed to check working window: %v", ErrInternal, err)
		}
		if !inside {
			uc.logger.Warn("CreateBooking: slot %s-%s is outside working window %s-%s",
				startAt.Format(domain.TimeFormat), endAt.Format(domain.TimeFormat), hours.OpenTime, hours.CloseTime)
			return fmt.Errorf("%w: booking time is outside working hours", ErrValidation)
		}

		// 7.4. Начало слота должно попадать на границу сетки
		aligned, err := availability.OnGridBoundary(*hours, startAt, service.DurationMin)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot alignment: %v", ErrInternal, err)
		}
		if !aligned {
			uc.logger.Warn("CreateBooking: slot %s is not aligned to the %d-minute grid",
				startAt.Format(domain.TimeFormat), service.DurationMin)
			return fmt.Errorf("%w: booking time is not aligned to the slot grid", ErrValidation)
		}

		// 7.5. У клиента не должно быть бронирования этой услуги на эту дату
		duplicates, err := uc.bookingRepo.GetAllWithFilter(txCtx, domain.BookingFilter{
			BusinessID: ptr.Ptr(req.BusinessID),
			ServiceID:  ptr.Ptr(req.ServiceID),
			CustomerID: ptr.Ptr(req.CustomerID),
			Date:       ptr.Ptr(startAt),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check duplicates: %v", err)
			return fmt.Errorf("%w: failed to check duplicates: %v", ErrInternal, err)
		}
		if len(duplicates) > 0 {
			uc.logger.Warn("CreateBooking: customer id=%d already has a booking for service id=%d on %s",
				req.CustomerID, req.ServiceID, startAt.Format(domain.DateFormat))
			return ErrAlreadyExists
		}

		// 7.6. Слот не должен быть занят подтвержденным бронированием
		confirmed := domain.StatusConfirmed
		taken, err := uc.bookingRepo.GetAllWithFilter(txCtx, domain.BookingFilter{
			ServiceID: ptr.Ptr(req.ServiceID),
			Status:    &confirmed,
			Date:      ptr.Ptr(startAt),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check slot occupancy: %v", err)
			return fmt.Errorf("%w: failed to check slot occupancy: %v", ErrInternal, err)
		}
		if hasConfirmedAtSameTime(taken, startAt, 0) {
			uc.logger.Warn("CreateBooking: slot %s is already taken for service id=%d",
				startAt.Format(domain.TimeFormat), req.ServiceID)
			return ErrAlreadyExists
		}

		// 7.7. Сохраняем бронирование
		booking := &domain.Booking{
			BusinessID: req.BusinessID,
			ServiceID:  req.ServiceID,
			CustomerID: req.CustomerID,
			StartAtUtc: startAt,
			EndAtUtc:   endAt,
			Status:     req.Status,
			Notes:      req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		BusinessID: result.BusinessID,
		ServiceID:  result.ServiceID,
		CustomerID: result.CustomerID,
		StartAtUtc: result.StartAtUtc,
		EndAtUtc:   result.EndAtUtc,
		Status:     string(result.Status),
		Notes:      result.Notes,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
