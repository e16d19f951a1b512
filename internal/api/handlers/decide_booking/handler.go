package decide_booking

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
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidBusinessID  = "некорректный ID бизнеса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAction      = "некорректное решение по заявке"
	msgNotFound           = "бронирование не найдено"
	msgAlreadyCanceled    = "бронирование уже отменено"
	msgForeignBusiness    = "бронирование принадлежит другому бизнесу"
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

// Handle PATCH /api/v1/bookings/{bookingId}/decision
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req DecideBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.BusinessID <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid business ID: booking_id=%d", bookingID)
		handlers.RespondBadRequest(w, msgInvalidBusinessID)
		return
	}

	action, err := models.ParseDecisionAction(req.Action)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/decision - Invalid action %q: booking_id=%d", req.Action, bookingID)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	err = h.service.Decide(r.Context(), req.BusinessID, bookingID, action)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/decision - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrValidation):
			h.logger.Warn("PATCH /bookings/{id}/decision - Foreign business: booking_id=%d, business_id=%d",
				bookingID, req.BusinessID)
			handlers.RespondBadRequest(w, msgForeignBusiness)

		case errors.Is(err, bookings.ErrAlreadyCanceled):
			h.logger.Warn("PATCH /bookings/{id}/decision - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyCanceled)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/decision - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidAction)

		default:
			h.logger.Error("PATCH /bookings/{id}/decision - Failed to apply decision: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/decision - Decision applied: booking_id=%d, action=%s",
		bookingID, action)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
