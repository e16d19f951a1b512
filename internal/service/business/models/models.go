package models

import (
	"time"

	"github.com/smartappt/booking-service/internal/domain"
)

// Request модели

// CreateBusinessRequest запрос на регистрацию бизнеса
type CreateBusinessRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	TimeZone string  `json:"timeZone"`
	Settings *string `json:"settings,omitempty"`
}

// UpdateBusinessRequest запрос на обновление профиля бизнеса
type UpdateBusinessRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	TimeZone string  `json:"timeZone"`
	Settings *string `json:"settings,omitempty"`
}

// SetOpeningHoursRequest запрос на установку рабочих часов на день недели
type SetOpeningHoursRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // понедельник=1 .. воскресенье=7
	OpenTime  string `json:"openTime"`  // "09:00"
	CloseTime string `json:"closeTime"` // "17:00"
}

// AddHolidayRequest запрос на добавление праздничного дня
type AddHolidayRequest struct {
	Date   string  `json:"date"` // "2026-03-08"
	Reason *string `json:"reason,omitempty"`
}

// Response модели

// BusinessResponse ответ с данными бизнеса
type BusinessResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	TimeZone string  `json:"timeZone"`
	Settings *string `json:"settings,omitempty"`

	CreatedAtUtc time.Time `json:"createdAtUtc"`
}

// OpeningHoursResponse ответ с рабочими часами на день недели
type OpeningHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

// WeekScheduleResponse ответ с расписанием на неделю
type WeekScheduleResponse struct {
	BusinessID int64                  `json:"businessId"`
	Days       []OpeningHoursResponse `json:"days"`
}

// HolidayResponse ответ с праздничным днем
type HolidayResponse struct {
	ID     int64   `json:"id"`
	Date   string  `json:"date"`
	Reason *string `json:"reason,omitempty"`
}

// HolidayListResponse ответ со списком праздников
type HolidayListResponse struct {
	BusinessID int64             `json:"businessId"`
	Holidays   []HolidayResponse `json:"holidays"`
}

// Методы конвертации

// FromDomainBusiness конвертирует domain модель в DTO
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	if b == nil {
		return nil
	}

	return &BusinessResponse{
		ID:           b.ID,
		Name:         b.Name,
		Email:        b.Email,
		Phone:        b.Phone,
		TimeZone:     b.TimeZone,
		Settings:     b.SettingsJSON,
		CreatedAtUtc: b.CreatedAtUtc,
	}
}

// FromDomainHours конвертирует рабочие часы в DTO
func FromDomainHours(h *domain.OpeningHours) OpeningHoursResponse {
	return OpeningHoursResponse{
		DayOfWeek: h.DayOfWeek,
		OpenTime:  h.OpenTime.String(),
		CloseTime: h.CloseTime.String(),
	}
}

// FromDomainHoliday конвертирует праздник в DTO
func FromDomainHoliday(h *domain.Holiday) HolidayResponse {
	return HolidayResponse{
		ID:     h.ID,
		Date:   h.Date.Format(domain.DateFormat),
		Reason: h.Reason,
	}
}
