package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrDeliveryFailed возвращается, когда webhook не принят получателем.
	// Ошибка не фатальна для бронирования: вызывающая сторона логирует её
	// и включает в ответ как предупреждение.
	ErrDeliveryFailed = errors.New("notifier client: delivery failed")
)
