package get_monthly_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartappt/booking-service/internal/api/handlers"
	monthlyCalendar "github.com/smartappt/booking-service/internal/usecase/monthly_calendar"
)

const (
	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidServiceID  = "некорректный ID услуги"
	msgInvalidQuery      = "некорректные параметры запроса"
	msgBusinessNotFound  = "бизнес не найден"
	msgServiceNotFound   = "услуга не найдена"
	msgForeignService    = "услуга принадлежит другому бизнесу"
	msgServiceInactive   = "услуга недоступна"
)

type Handler struct {
	useCase MonthlyCalendarUseCase
	logger  Logger
}

func NewHandler(useCase MonthlyCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/services/{serviceId}/calendar?year=&month=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &monthlyCalendar.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Year:       year,
		Month:      month,
	})
	if err != nil {
		switch {
		case errors.Is(err, monthlyCalendar.ErrBusinessNotFound):
			h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, monthlyCalendar.ErrServiceNotFound):
			h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Service not found: service_id=%d", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, monthlyCalendar.ErrValidation):
			h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Foreign service: business_id=%d, service_id=%d",
				businessID, serviceID)
			handlers.RespondBadRequest(w, msgForeignService)

		case errors.Is(err, monthlyCalendar.ErrServiceInactive):
			h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Service inactive: service_id=%d", serviceID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, monthlyCalendar.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/services/{id}/calendar - Invalid input: service_id=%d, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /businesses/{id}/services/{id}/calendar - Failed to build calendar: service_id=%d, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/services/{id}/calendar - Calendar built: service_id=%d, year=%d, month=%d",
		serviceID, year, month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
