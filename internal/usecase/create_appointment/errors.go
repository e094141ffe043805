package create_appointment

import "errors"

var (
	// ErrUnknownService возвращается для услуги вне каталога
	ErrUnknownService = errors.New("create_appointment: unknown service")

	// ErrDateInPast возвращается, когда дата записи уже прошла
	ErrDateInPast = errors.New("create_appointment: date is in the past")

	// ErrShopClosed возвращается, когда заведение закрыто в указанную дату
	ErrShopClosed = errors.New("create_appointment: shop is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда слот не умещается в рабочие часы
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside working hours")

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на сетке слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: start time is not on the slot grid")

	// ErrTooLateToBook возвращается, когда время начала на сегодня уже прошло
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrSlotTaken возвращается, когда запрошенный интервал пересекается
	// с существующей записью. Клиент должен выбрать другой слот.
	ErrSlotTaken = errors.New("create_appointment: slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
