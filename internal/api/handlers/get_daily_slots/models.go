package get_daily_slots

import (
	"github.com/smartappt/booking-service/internal/domain"
	dailySlots "github.com/smartappt/booking-service/internal/usecase/daily_slots"
	"github.com/smartappt/booking-service/pkg/types"
)

// DailySlotsResponse ответ со свободными слотами на день
type DailySlotsResponse struct {
	ServiceID int64              `json:"serviceId"`
	Date      string             `json:"date"` // "2026-03-15"
	Busy      bool               `json:"busy"`
	Slots     []types.TimeString `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ usecase в DTO
func FromUseCaseResponse(resp *dailySlots.Response) *DailySlotsResponse {
	if resp == nil {
		return nil
	}

	slots := resp.Slots
	if slots == nil {
		slots = []types.TimeString{}
	}

	return &DailySlotsResponse{
		ServiceID: resp.ServiceID,
		Date:      resp.Date.Format(domain.DateFormat),
		Busy:      resp.Busy,
		Slots:     slots,
	}
}
