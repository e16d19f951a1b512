package create_business

import (
	"errors"
	"net/http"

	"github.com/smartappt/booking-service/internal/api/handlers"
	"github.com/smartappt/booking-service/internal/service/business"
	"github.com/smartappt/booking-service/internal/service/business/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные данные бизнеса"
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

// Handle POST /api/v1/businesses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBusinessRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /businesses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, business.ErrInvalidInput):
			h.logger.Warn("POST /businesses - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("POST /businesses - Failed to create business: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /businesses - Business created successfully: business_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
