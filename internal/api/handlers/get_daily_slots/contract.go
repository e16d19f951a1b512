package get_daily_slots

import (
	"context"

	dailySlots "github.com/smartappt/booking-service/internal/usecase/daily_slots"
)

type DailySlotsUseCase interface {
	Execute(ctx context.Context, req *dailySlots.Request) (*dailySlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
