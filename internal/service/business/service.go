package business

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smartappt/booking-service/internal/domain"
	businessRepo "github.com/smartappt/booking-service/internal/infra/storage/business"
	scheduleRepo "github.com/smartappt/booking-service/internal/infra/storage/schedule"
	"github.com/smartappt/booking-service/internal/service/business/models"
	"github.com/smartappt/booking-service/pkg/types"
)

// Service сервис для управления профилем бизнеса, расписанием и праздниками
type Service struct {
	businessRepo BusinessRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бизнесов
func NewService(
	businessRepo BusinessRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		businessRepo: businessRepo,
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Create регистрирует новый бизнес
func (s *Service) Create(ctx context.Context, req *models.CreateBusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("CreateBusiness: name=%s", req.Name)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("CreateBusiness: empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	timeZone := req.TimeZone
	if timeZone == "" {
		timeZone = "UTC"
	}

	created, err := s.businessRepo.Create(ctx, &domain.Business{
		Name:         name,
		Email:        req.Email,
		Phone:        req.Phone,
		TimeZone:     timeZone,
		SettingsJSON: req.Settings,
	})
	if err != nil {
		s.logger.Error("CreateBusiness: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBusiness: created business id=%d", created.ID)
	return models.FromDomainBusiness(created), nil
}

// GetByID получает профиль бизнеса
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BusinessResponse, error) {
	s.logger.Info("GetBusiness: id=%d", id)

	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("GetBusiness: business id=%d not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBusiness: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(business), nil
}

// Update обновляет профиль бизнеса
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBusinessRequest) (*models.BusinessResponse, error) {
	s.logger.Info("UpdateBusiness: id=%d", id)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("UpdateBusiness: empty name for id=%d", id)
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	business, err := s.businessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("UpdateBusiness: business id=%d not found", id)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("UpdateBusiness: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	business.Name = name
	business.Email = req.Email
	business.Phone = req.Phone
	if req.TimeZone != "" {
		business.TimeZone = req.TimeZone
	}
	if req.Settings != nil {
		business.SettingsJSON = req.Settings
	}

	if err := s.businessRepo.Update(ctx, business); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("UpdateBusiness: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateBusiness: updated business id=%d", id)
	return models.FromDomainBusiness(business), nil
}

// Delete удаляет бизнес вместе с услугами, расписанием и праздниками
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBusiness: id=%d", id)

	if err := s.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("DeleteBusiness: business id=%d not found", id)
			return ErrBusinessNotFound
		}
		s.logger.Error("DeleteBusiness: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBusiness: deleted business id=%d", id)
	return nil
}

// GetWeekSchedule получает расписание бизнеса на неделю
func (s *Service) GetWeekSchedule(ctx context.Context, businessID int64) (*models.WeekScheduleResponse, error) {
	s.logger.Info("GetWeekSchedule: business=%d", businessID)

	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: GetWeekSchedule - repository error: %v", ErrInternal, err)
	}

	hours, err := s.scheduleRepo.GetHoursByBusinessID(ctx, businessID)
	if err != nil {
		s.logger.Error("GetWeekSchedule: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetWeekSchedule - repository error: %v", ErrInternal, err)
	}

	resp := &models.WeekScheduleResponse{
		BusinessID: businessID,
		Days:       make([]models.OpeningHoursResponse, 0, len(hours)),
	}
	for _, h := range hours {
		resp.Days = append(resp.Days, models.FromDomainHours(h))
	}

	return resp, nil
}

// SetOpeningHours создает или обновляет рабочее окно на день недели
func (s *Service) SetOpeningHours(ctx context.Context, businessID int64, req *models.SetOpeningHoursRequest) (*models.OpeningHoursResponse, error) {
	s.logger.Info("SetOpeningHours: business=%d, day=%d, window=%s-%s",
		businessID, req.DayOfWeek, req.OpenTime, req.CloseTime)

	if req.DayOfWeek < domain.MinDayOfWeek || req.DayOfWeek > domain.MaxDayOfWeek {
		return nil, fmt.Errorf("%w: dayOfWeek must be in range %d-%d", ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	openTime, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid openTime: %v", ErrInvalidInput, err)
	}
	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid closeTime: %v", ErrInvalidInput, err)
	}
	if !openTime.IsBefore(closeTime) {
		return nil, fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("SetOpeningHours: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: SetOpeningHours - repository error: %v", ErrInternal, err)
	}

	hours, err := s.scheduleRepo.UpsertHours(ctx, &domain.OpeningHours{
		BusinessID: businessID,
		DayOfWeek:  req.DayOfWeek,
		OpenTime:   openTime,
		CloseTime:  closeTime,
	})
	if err != nil {
		s.logger.Error("SetOpeningHours: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: SetOpeningHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetOpeningHours: saved hours id=%d for business=%d", hours.ID, businessID)
	resp := models.FromDomainHours(hours)
	return &resp, nil
}

// DeleteOpeningHours убирает рабочее окно дня недели, делая день выходным
func (s *Service) DeleteOpeningHours(ctx context.Context, businessID int64, dayOfWeek int) error {
	s.logger.Info("DeleteOpeningHours: business=%d, day=%d", businessID, dayOfWeek)

	if dayOfWeek < domain.MinDayOfWeek || dayOfWeek > domain.MaxDayOfWeek {
		return fmt.Errorf("%w: dayOfWeek must be in range %d-%d", ErrInvalidInput, domain.MinDayOfWeek, domain.MaxDayOfWeek)
	}

	if err := s.scheduleRepo.DeleteHours(ctx, businessID, dayOfWeek); err != nil {
		if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
			return ErrHoursNotFound
		}
		s.logger.Error("DeleteOpeningHours: repository error for business=%d: %v", businessID, err)
		return fmt.Errorf("%w: DeleteOpeningHours - repository error: %v", ErrInternal, err)
	}

	return nil
}

// AddHoliday добавляет праздничный день бизнеса
func (s *Service) AddHoliday(ctx context.Context, businessID int64, req *models.AddHolidayRequest) (*models.HolidayResponse, error) {
	s.logger.Info("AddHoliday: business=%d, date=%s", businessID, req.Date)

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, businessRepo.ErrBusinessNotFound) {
			s.logger.Warn("AddHoliday: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: AddHoliday - repository error: %v", ErrInternal, err)
	}

	holiday, err := s.scheduleRepo.CreateHoliday(ctx, &domain.Holiday{
		BusinessID: businessID,
		Date:       date,
		Reason:     req.Reason,
	})
	if err != nil {
		s.logger.Error("AddHoliday: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: AddHoliday - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddHoliday: saved holiday id=%d for business=%d", holiday.ID, businessID)
	resp := models.FromDomainHoliday(holiday)
	return &resp, nil
}

// GetHolidays получает праздники бизнеса за диапазон дат
func (s *Service) GetHolidays(ctx context.Context, businessID int64, from, to time.Time) (*models.HolidayListResponse, error) {
	s.logger.Info("GetHolidays: business=%d, from=%s, to=%s",
		businessID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if to.Before(from) {
		return nil, fmt.Errorf("%w: 'to' date must not be before 'from'", ErrInvalidInput)
	}

	holidays, err := s.scheduleRepo.GetHolidaysInRange(ctx, businessID, from, to)
	if err != nil {
		s.logger.Error("GetHolidays: repository error for business=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetHolidays - repository error: %v", ErrInternal, err)
	}

	resp := &models.HolidayListResponse{
		BusinessID: businessID,
		Holidays:   make([]models.HolidayResponse, 0, len(holidays)),
	}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, models.FromDomainHoliday(h))
	}

	return resp, nil
}

// DeleteHoliday удаляет праздничный день
func (s *Service) DeleteHoliday(ctx context.Context, businessID int64, rawDate string) error {
	s.logger.Info("DeleteHoliday: business=%d, date=%s", businessID, rawDate)

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD: %v", ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.DeleteHoliday(ctx, businessID, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
			return ErrHolidayNotFound
		}
		s.logger.Error("DeleteHoliday: repository error for business=%d: %v", businessID, err)
		return fmt.Errorf("%w: DeleteHoliday - repository error: %v", ErrInternal, err)
	}

	return nil
}
