package domain

import (
	"time"

	"github.com/smartappt/booking-service/pkg/types"
)

// Business represents a company that offers bookable services
type Business struct {
	ID           int64
	Name         string
	Email        *string
	Phone        *string
	TimeZone     string // label only, the engine operates on the business-local clock
	SettingsJSON *string
	CreatedAtUtc time.Time
}

// Service represents a bookable offering with a fixed duration
type Service struct {
	ID           int64
	BusinessID   int64
	Name         string
	DurationMin  int
	Price        float64
	IsActive     bool
	CreatedAtUtc time.Time
}

// BelongsTo returns true if the service belongs to the given business
func (s *Service) BelongsTo(businessID int64) bool {
	return s.BusinessID == businessID
}

// Duration returns the service duration as a time.Duration
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMin) * time.Minute
}

// OpeningHours represents the single open window of a business on one weekday.
// DayOfWeek is ISO numbering: Monday=1 .. Sunday=7.
// The absence of a row for a weekday means the business is closed that day.
type OpeningHours struct {
	ID         int64
	BusinessID int64
	DayOfWeek  int
	OpenTime   types.TimeString
	CloseTime  types.TimeString
}

// Holiday represents a fully-closed calendar date for a business
type Holiday struct {
	ID         int64
	BusinessID int64
	Date       time.Time // date only, midnight UTC
	Reason     *string
}

// Customer represents a person who books services
type Customer struct {
	ID           int64
	FullName     string
	Email        *string
	Phone        *string
	CreatedAtUtc time.Time
}
