package get_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartappt/booking-service/internal/api/handlers"
	"github.com/smartappt/booking-service/internal/service/catalog"
	"github.com/smartappt/booking-service/internal/service/catalog/models"
)

const (
	defaultTake = 20

	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidQuery      = "некорректные параметры запроса"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/services?skip=&take=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/services - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()

	skip := 0
	if raw := query.Get("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/services - Invalid skip: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		skip = parsed
	}

	take := defaultTake
	if raw := query.Get("take"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/services - Invalid take: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		take = parsed
	}

	result, err := h.service.List(r.Context(), &models.ListServicesRequest{
		BusinessID: businessID,
		Skip:       skip,
		Take:       take,
	})
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/services - Invalid input: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /businesses/{id}/services - Failed to list services: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/services - Services retrieved: business_id=%d, count=%d",
		businessID, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
