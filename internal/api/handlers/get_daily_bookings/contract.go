package get_daily_bookings

import (
	"context"

	"github.com/smartappt/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetDailyBookings(ctx context.Context, req *models.GetDailyBookingsRequest) (*models.DailyBookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
