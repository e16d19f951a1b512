package manage_holidays

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/smartappt/booking-service/internal/api/handlers"
	"github.com/smartappt/booking-service/internal/domain"
	"github.com/smartappt/booking-service/internal/service/business"
	"github.com/smartappt/booking-service/internal/service/business/models"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateRange   = "некорректный диапазон дат, ожидается формат YYYY-MM-DD"
	msgValidationFailed   = "некорректный праздничный день"
	msgBusinessNotFound   = "бизнес не найден"
	msgHolidayNotFound    = "праздничный день не найден"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleAdd POST /api/v1/businesses/{businessId}/holidays
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /businesses/{id}/holidays - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req models.AddHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses/{id}/holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddHoliday(r.Context(), businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			h.logger.Warn("POST /businesses/{id}/holidays - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("POST /businesses/{id}/holidays - Validation failed: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /businesses/{id}/holidays - Failed to add holiday: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses/{id}/holidays - Holiday added: business_id=%d, date=%s",
		businessID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleList GET /api/v1/businesses/{businessId}/holidays?from=&to=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/holidays - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/holidays - Invalid 'from' date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/holidays - Invalid 'to' date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	result, err := h.service.GetHolidays(r.Context(), businessID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/holidays - Validation failed: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /businesses/{id}/holidays - Failed to get holidays: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/holidays - Holidays retrieved: business_id=%d, count=%d",
		businessID, len(result.Holidays))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/businesses/{businessId}/holidays/{date}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/holidays/{date} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	err = h.service.DeleteHoliday(r.Context(), businessID, vars["date"])
	if err != nil {
		switch {
		case errors.Is(err, business.ErrHolidayNotFound):
			h.logger.Warn("DELETE /businesses/{id}/holidays/{date} - Holiday not found: business_id=%d, date=%s",
				businessID, vars["date"])
			handlers.RespondNotFound(w, msgHolidayNotFound)

		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("DELETE /businesses/{id}/holidays/{date} - Validation failed: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("DELETE /businesses/{id}/holidays/{date} - Failed to delete holiday: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/holidays/{date} - Holiday deleted: business_id=%d, date=%s",
		businessID, vars["date"])
	handlers.RespondJSON(w, http.StatusOK, nil)
}
