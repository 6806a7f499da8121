package create_booking

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("create_booking: space not found")

	// ErrSpaceInactive возвращается, когда пространство деактивировано
	ErrSpaceInactive = errors.New("create_booking: space is not active")

	// ErrSlotNotAvailable возвращается, когда выбранный интервал пересекается
	// с существующим активным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidDate возвращается при отсутствующей дате или дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrInvalidTimeRange возвращается, когда час начала не раньше часа конца
	ErrInvalidTimeRange = errors.New("create_booking: start must be before end")

	// ErrMaxDurationExceeded возвращается при длительности больше 8 часов
	ErrMaxDurationExceeded = errors.New("create_booking: maximum duration exceeded")

	// ErrTooLateToBook возвращается, когда до начала меньше часа
	ErrTooLateToBook = errors.New("create_booking: start time is too soon")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
