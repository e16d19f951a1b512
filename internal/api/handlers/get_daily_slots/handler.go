package get_daily_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/smartappt/booking-service/internal/api/handlers"
	"github.com/smartappt/booking-service/internal/domain"
	dailySlots "github.com/smartappt/booking-service/internal/usecase/daily_slots"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidDate       = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgBusinessNotFound  = "бизнес не найден"
	msgServiceNotFound   = "услуга не найдена"
	msgValidationFailed  = "некорректный запрос слотов"
)

type Handler struct {
	useCase DailySlotsUseCase
	logger  Logger
}

func NewHandler(useCase DailySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/services/{serviceId}/slots?date=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/slots - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &dailySlots.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, dailySlots.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/services/{id}/slots - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, dailySlots.ErrServiceNotFound):
			h.logger.Warn("GET /businesses/{id}/services/{id}/slots - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, dailySlots.ErrValidation), errors.Is(err, dailySlots.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/services/{id}/slots - Validation failed: business_id=%d, service_id=%d, error=%v",
				businessID, serviceID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("GET /businesses/{id}/services/{id}/slots - Failed to get slots: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/services/{id}/slots - Slots retrieved: service_id=%d, date=%s, busy=%t, count=%d",
		serviceID, result.Date.Format(domain.DateFormat), result.Busy, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
