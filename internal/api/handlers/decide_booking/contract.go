package decide_booking

import (
	"context"

	"github.com/smartappt/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	Decide(ctx context.Context, businessID, bookingID int64, action models.DecisionAction) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
