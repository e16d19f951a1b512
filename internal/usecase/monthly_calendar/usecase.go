package monthly_calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/smartappt/booking-service/internal/availability"
	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	catalogRepo "github.com/smartappt/booking-service/internal/infra/storage/catalog"
)

// UseCase use case для построения месячного календаря доступности услуги
type UseCase struct {
	bookingRepo  BookingRepository
	businessRepo BusinessRepository
	catalogRepo  CatalogRepository
	scheduleRepo ScheduleRepository
	cache        CalendarCache
	cacheTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// cache может быть nil - тогда календарь строится на каждый запрос.
func NewUseCase(
	bookingRepo BookingRepository,
	businessRepo BusinessRepository,
	catalogRepo CatalogRepository,
	scheduleRepo ScheduleRepository,
	cache CalendarCache,
	cacheTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		businessRepo: businessRepo,
		catalogRepo:  catalogRepo,
		scheduleRepo: scheduleRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит календарь доступности услуги на месяц.
//
// День открыт, если он не в прошлом, не праздник и для его дня недели
// заданы рабочие часы. Свободные слоты определяются сравнением числа
// подтвержденных бронирований с емкостью сетки дня. Счетчики бронирований
// загружаются одним агрегатным запросом на весь месяц.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MonthlyCalendar: business=%d, service=%d, year=%d, month=%d",
		req.BusinessID, req.ServiceID, req.Year, req.Month)

	// 1. Валидация входных данных
	if req.BusinessID <= 0 {
		return nil, fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be in range 1-12", ErrInvalidInput)
	}
	if req.Year < 1 {
		return nil, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	// 2. Проверяем бизнес
	if _, err := uc.businessRepo.GetByID(ctx, req.BusinessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			uc.logger.Warn("MonthlyCalendar: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("MonthlyCalendar: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 3. Проверяем услугу: существует, принадлежит бизнесу, активна
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("MonthlyCalendar: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("MonthlyCalendar: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.BelongsTo(req.BusinessID) {
		uc.logger.Warn("MonthlyCalendar: service id=%d belongs to business id=%d, not id=%d",
			service.ID, service.BusinessID, req.BusinessID)
		return nil, fmt.Errorf("%w: service does not belong to this business", ErrValidation)
	}

	if !service.IsActive {
		uc.logger.Warn("MonthlyCalendar: service id=%d is inactive", service.ID)
		return nil, ErrServiceInactive
	}

	// 4. Пробуем кеш; лезем в него только после проверок принадлежности,
	// чтобы попадание не обходило их
	cacheKey := fmt.Sprintf("calendar:%d:%04d-%02d", req.ServiceID, req.Year, req.Month)
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var cached Response
			if err := json.Unmarshal(data, &cached); err == nil {
				uc.logger.Info("MonthlyCalendar: cache hit for %s", cacheKey)
				return &cached, nil
			}
		}
	}

	// 5. Границы месяца: [firstDay, nextMonth)
	firstDay := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := firstDay.AddDate(0, 1, 0)
	daysInMonth := nextMonth.AddDate(0, 0, -1).Day()

	// 6. Рабочие часы по дням недели
	hoursList, err := uc.scheduleRepo.GetHoursByBusinessID(ctx, service.BusinessID)
	if err != nil {
		uc.logger.Error("MonthlyCalendar: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	weekHours := make(map[int]domain.OpeningHours, len(hoursList))
	for _, h := range hoursList {
		weekHours[h.DayOfWeek] = *h
	}

	// 7. Праздники месяца
	holidayList, err := uc.scheduleRepo.GetHolidaysInRange(ctx, service.BusinessID, firstDay, nextMonth.AddDate(0, 0, -1))
	if err != nil {
		uc.logger.Error("MonthlyCalendar: failed to get holidays: %v", err)
		return nil, fmt.Errorf("%w: failed to get holidays: %v", ErrInternal, err)
	}

	holidays := make(map[string]bool, len(holidayList))
	for _, h := range holidayList {
		holidays[availability.DateKey(h.Date)] = true
	}

	// 8. Счетчики подтвержденных бронирований одним запросом на месяц
	bookedCounts, err := uc.bookingRepo.CountConfirmedByServiceInRange(ctx, req.ServiceID, firstDay, nextMonth)
	if err != nil {
		uc.logger.Error("MonthlyCalendar: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
	}

	// 9. Доступность по дням
	now := uc.timeProvider.Now().UTC()
	days := make([]DayResponse, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(req.Year, time.Month(req.Month), day, 0, 0, 0, 0, time.UTC)
		d := availability.ForDay(date, now, holidays, weekHours, service.DurationMin, bookedCounts)
		days = append(days, DayResponse{
			Day:          d.Day,
			IsOpen:       d.IsOpen,
			HasFreeSlots: d.HasFreeSlots,
		})
	}

	response := &Response{
		ServiceID: req.ServiceID,
		Year:      req.Year,
		Month:     req.Month,
		Days:      days,
	}

	// 10. Кладем в кеш; ошибка кеша не ломает ответ
	if uc.cache != nil {
		if data, err := json.Marshal(response); err == nil {
			if err := uc.cache.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("MonthlyCalendar: failed to cache %s: %v", cacheKey, err)
			}
		}
	}

	return response, nil
}
