package get_my_bookings

import (
	"context"

	"github.com/smartappt/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetMyBookings(ctx context.Context, req *models.GetMyBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
