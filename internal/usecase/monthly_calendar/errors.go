package monthly_calendar

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("monthly_calendar: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("monthly_calendar: service not found")

	// ErrValidation возвращается, когда услуга принадлежит другому бизнесу
	ErrValidation = errors.New("monthly_calendar: validation failed")

	// ErrServiceInactive возвращается при запросе календаря выключенной услуги
	ErrServiceInactive = errors.New("monthly_calendar: service is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("monthly_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("monthly_calendar: internal error")
)
