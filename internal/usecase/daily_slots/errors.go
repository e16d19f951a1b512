package daily_slots

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("daily_slots: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("daily_slots: service not found")

	// ErrValidation возвращается при запросе слотов выключенной услуги,
	// услуги чужого бизнеса или при некорректной дате
	ErrValidation = errors.New("daily_slots: validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("daily_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("daily_slots: internal error")
)
