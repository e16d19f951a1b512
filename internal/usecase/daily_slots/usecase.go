package daily_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartappt/booking-service/internal/availability"
	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/smartappt/booking-service/internal/infra/storage/schedule"
	"github.com/smartappt/booking-service/pkg/ptr"
	"github.com/smartappt/booking-service/pkg/types"
)

// UseCase use case для получения свободных слотов услуги на день
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute возвращает свободные слоты услуги на календарную дату.
//
// Праздник и день без рабочих часов - не ошибки: ответ помечается Busy
// с пустым списком слотов. Слот считается занятым, только если на его
// время начала есть подтвержденное бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DailyFreeSlots: business=%d, service=%d, date=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Проверяем бизнес
	if _, err := uc.businessRepo.GetByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("DailyFreeSlots: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("DailyFreeSlots: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Проверяем услугу: существует, принадлежит бизнесу, активна
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("DailyFreeSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("DailyFreeSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.BelongsTo(req.BusinessID) {
		uc.logger.Warn("DailyFreeSlots: service id=%d belongs to business id=%d, not id=%d",
			service.ID, service.BusinessID, req.BusinessID)
		return nil, fmt.Errorf("%w: service does not belong to this business", ErrValidation)
	}

	if !service.IsActive {
		uc.logger.Warn("DailyFreeSlots: service id=%d is inactive", service.ID)
		return nil, fmt.Errorf("%w: service is inactive", ErrValidation)
	}

	busyResponse := &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Busy:      true,
		Slots:     []types.TimeString{},
	}

	// 4. Праздничный день закрывает бизнес целиком
	_, err = uc.scheduleRepo.GetHolidayByDate(ctx, service.BusinessID, req.Date)
	if err == nil {
		uc.logger.Info("DailyFreeSlots: business id=%d has a holiday on %s",
			service.BusinessID, req.Date.Format(domain.DateFormat))
		return busyResponse, nil
	}
	if !errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
		uc.logger.Error("DailyFreeSlots: failed to check holiday: %v", err)
		return nil, fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
	}

	// 5. Рабочие часы на день недели
	hours, err := uc.scheduleRepo.GetHoursByWeekday(ctx, service.BusinessID, availability.ISOWeekday(req.Date))
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
			uc.logger.Info("DailyFreeSlots: no working hours for business id=%d on weekday %d",
				service.BusinessID, availability.ISOWeekday(req.Date))
			return busyResponse, nil
		}
		uc.logger.Error("DailyFreeSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 6. Полная сетка слотов дня
	grid, err := availability.Grid(*hours, service.DurationMin)
	if err != nil {
		uc.logger.Error("DailyFreeSlots: failed to build slot grid: %v", err)
		return nil, fmt.Errorf("%w: failed to build slot grid: %v", ErrInternal, err)
	}

	// 7. Подтвержденные бронирования на эту дату
	confirmed := domain.StatusConfirmed
	bookings, err := uc.bookingRepo.GetAllWithFilter(ctx, domain.BookingFilter{
		ServiceID: ptr.Ptr(req.ServiceID),
		Status:    &confirmed,
		Date:      ptr.Ptr(req.Date),
	})
	if err != nil {
		uc.logger.Error("DailyFreeSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	taken := make(map[types.TimeString]bool, len(bookings))
	for _, b := range bookings {
		taken[types.NewTimeString(b.StartAtUtc.UTC())] = true
	}

	// 8. Сетка минус занятые слоты, порядок сохраняется
	free := make([]types.TimeString, 0, len(grid))
	for _, slot := range grid {
		if !taken[slot] {
			free = append(free, slot)
		}
	}

	uc.logger.Info("DailyFreeSlots: service=%d date=%s free=%d/%d",
		req.ServiceID, req.Date.Format(domain.DateFormat), len(free), len(grid))

	return &Response{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		Busy:      false,
		Slots:     free,
	}, nil
}
