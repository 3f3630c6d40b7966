package schedule

import "errors"

var (
	// ErrNotConfigured возвращается, когда рабочие часы салона не настроены
	ErrNotConfigured = errors.New("business hours are not configured")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
