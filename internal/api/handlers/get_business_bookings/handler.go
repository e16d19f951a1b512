package get_business_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartappt/booking-service/internal/api/handlers"
	"github.com/smartappt/booking-service/internal/service/bookings"
	"github.com/smartappt/booking-service/internal/service/bookings/models"
)

const (
	defaultTake = 50

	msgInvalidBusinessID = "некорректный ID бизнеса"
	msgInvalidQuery      = "некорректные параметры запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/businesses/{businessId}/bookings?status=&skip=&take=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	businessID, err := strconv.ParseInt(vars["businessId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /businesses/{id}/bookings - Invalid business ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	query := r.URL.Query()

	var statusPtr *string
	if status := query.Get("status"); status != "" {
		statusPtr = &status
	}

	skip := 0
	if raw := query.Get("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/bookings - Invalid skip: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		skip = parsed
	}

	take := defaultTake
	if raw := query.Get("take"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /businesses/{id}/bookings - Invalid take: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		take = parsed
	}

	result, err := h.service.GetBusinessBookings(r.Context(), &models.GetBusinessBookingsRequest{
		BusinessID: businessID,
		Status:     statusPtr,
		Skip:       skip,
		Take:       take,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /businesses/{id}/bookings - Invalid input: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /businesses/{id}/bookings - Failed to get bookings: business_id=%d, error=%v",
				businessID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /businesses/{id}/bookings - Bookings retrieved successfully: business_id=%d, count=%d",
		businessID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
