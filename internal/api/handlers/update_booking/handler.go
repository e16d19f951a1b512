package update_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartappt/booking-service/internal/api/handlers"
	"github.com/smartappt/booking-service/internal/api/middleware"
	updateBooking "github.com/smartappt/booking-service/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceInactive    = "услуга недоступна"
	msgHoliday            = "бизнес закрыт: праздничный день"
	msgNoWorkingHours     = "в выбранное время бизнес не работает"
	msgValidationFailed   = "некорректное время бронирования"
	msgAlreadyExists      = "слот уже занят"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, customerID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrServiceNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Service not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateBooking.ErrServiceInactive):
			h.logger.Warn("PATCH /bookings/{id} - Service inactive: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, updateBooking.ErrHoliday):
			h.logger.Warn("PATCH /bookings/{id} - Holiday: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgHoliday)

		case errors.Is(err, updateBooking.ErrNoWorkingHours):
			h.logger.Warn("PATCH /bookings/{id} - No working hours: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgNoWorkingHours)

		case errors.Is(err, updateBooking.ErrAlreadyExists):
			h.logger.Warn("PATCH /bookings/{id} - Slot taken: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, updateBooking.ErrValidation), errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id} - Validation failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgValidationFailed)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated successfully: booking_id=%d, customer_id=%d",
		bookingID, customerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
