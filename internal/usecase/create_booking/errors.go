package create_booking

import "errors"

var (
	// ErrBusinessNotFound возвращается, когда бизнес не найден
	ErrBusinessNotFound = errors.New("create_booking: business not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrServiceInactive возвращается, когда услуга выключена
	ErrServiceInactive = errors.New("create_booking: service is inactive")

	// ErrHoliday возвращается, когда дата попадает на праздничный день бизнеса
	ErrHoliday = errors.New("create_booking: business is closed for a holiday")

	// ErrNoWorkingHours возвращается, когда на день недели не заданы рабочие часы
	ErrNoWorkingHours = errors.New("create_booking: no working hours for this day")

	// ErrValidation возвращается, когда запрошенное время не проходит проверку:
	// в прошлом, чужая услуга, вне рабочего окна или мимо сетки слотов
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrAlreadyExists возвращается при дубликате или занятом слоте
	ErrAlreadyExists = errors.New("create_booking: booking already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
