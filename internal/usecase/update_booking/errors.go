package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("update_booking: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("update_booking: service not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("update_booking: customer not found")

	// ErrServiceInactive возвращается, когда услуга выключена
	ErrServiceInactive = errors.New("update_booking: service is inactive")

	// ErrHoliday возвращается, когда новая дата попадает на праздничный день
	ErrHoliday = errors.New("update_booking: business is closed for a holiday")

	// ErrNoWorkingHours возвращается, когда на день недели не заданы рабочие часы
	// или новое время выходит за рабочее окно
	ErrNoWorkingHours = errors.New("update_booking: no working hours for this time")

	// ErrValidation возвращается, когда новое время не проходит проверку:
	// в прошлом, чужое бронирование, чужая услуга или мимо сетки слотов
	ErrValidation = errors.New("update_booking: validation failed")

	// ErrAlreadyExists возвращается, когда новый слот занят другим бронированием
	ErrAlreadyExists = errors.New("update_booking: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
