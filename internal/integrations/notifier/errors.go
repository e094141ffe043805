package notifier

import "errors"

var (
	// ErrSendFailed возвращается при ошибке доставки письма.
	// Вызывающая сторона только логирует эту ошибку — доставка уведомления
	// никогда не является условием успеха бронирования.
	ErrSendFailed = errors.New("notifier: failed to send owner notification")

	// ErrInvalidConfig возвращается при некорректной конфигурации клиента
	ErrInvalidConfig = errors.New("notifier: invalid configuration")
)
