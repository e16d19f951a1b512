package get_business

import "github.com/smartappt/booking-service/internal/service/business/models"

// BusinessWithScheduleResponse профиль бизнеса вместе с недельным расписанием
type BusinessWithScheduleResponse struct {
	models.BusinessResponse
	Schedule []models.OpeningHoursResponse `json:"schedule"`
}
