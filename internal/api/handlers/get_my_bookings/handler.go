package get_my_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/smartappt/booking-service/internal/api/handlers"
	"github.com/smartappt/booking-service/internal/api/middleware"
	"github.com/smartappt/booking-service/internal/service/bookings"
	"github.com/smartappt/booking-service/internal/service/bookings/models"
)

const (
	defaultTake = 20

	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidQuery  = "некорректные параметры запроса"
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

// Handle GET /api/v1/me/bookings?status=&skip=&take=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /me/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
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
			h.logger.Warn("GET /me/bookings - Invalid skip: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		skip = parsed
	}

	take := defaultTake
	if raw := query.Get("take"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /me/bookings - Invalid take: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		take = parsed
	}

	result, err := h.service.GetMyBookings(r.Context(), &models.GetMyBookingsRequest{
		CustomerID: customerID,
		Status:     statusPtr,
		Skip:       skip,
		Take:       take,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /me/bookings - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /me/bookings - Failed to get bookings: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me/bookings - Bookings retrieved successfully: customer_id=%d, count=%d",
		customerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
