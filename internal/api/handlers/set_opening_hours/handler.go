package set_opening_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartappt/booking-service/internal/api/handlers"
	"github.com/smartappt/booking-service/internal/service/business"
	"github.com/smartappt/booking-service/internal/service/business/models"
)

const (
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidDayOfWeek   = "некорректный день недели"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректное рабочее окно"
	msgBusinessNotFound   = "бизнес не найден"
	msgHoursNotFound      = "рабочие часы не найдены"
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

// HandleSet PUT /api/v1/businesses/{businessId}/schedule
func (h *Handler) HandleSet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /businesses/{id}/schedule - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	var req models.SetOpeningHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /businesses/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetOpeningHours(r.Context(), businessID, &req)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrBusinessNotFound):
			h.logger.Warn("PUT /businesses/{id}/schedule - Business not found: business_id=%d", businessID)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("PUT /businesses/{id}/schedule - Validation failed: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("PUT /businesses/{id}/schedule - Failed to set hours: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /businesses/{id}/schedule - Hours saved: business_id=%d, day=%d",
		businessID, result.DayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/businesses/{businessId}/schedule/{dayOfWeek}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/schedule/{day} - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	dayOfWeek, err := strconv.Atoi(vars["dayOfWeek"])
	if err != nil {
		h.logger.Warn("DELETE /businesses/{id}/schedule/{day} - Invalid day of week: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOfWeek)
		return
	}

	err = h.service.DeleteOpeningHours(r.Context(), businessID, dayOfWeek)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrHoursNotFound):
			h.logger.Warn("DELETE /businesses/{id}/schedule/{day} - Hours not found: business_id=%d, day=%d",
				businessID, dayOfWeek)
			handlers.RespondNotFound(w, msgHoursNotFound)

		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("DELETE /businesses/{id}/schedule/{day} - Validation failed: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		default:
			h.logger.Error("DELETE /businesses/{id}/schedule/{day} - Failed to delete hours: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /businesses/{id}/schedule/{day} - Hours deleted: business_id=%d, day=%d",
		businessID, dayOfWeek)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
