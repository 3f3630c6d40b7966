package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrNotConfigured возвращается, когда рабочие часы салона не настроены
	ErrNotConfigured = errors.New("business hours are not configured")

	// ErrInvalidRange возвращается при некорректном диапазоне сканирования
	ErrInvalidRange = errors.New("invalid scan range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
