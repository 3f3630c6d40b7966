package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrNotConfigured возвращается, когда рабочие часы салона не настроены
	ErrNotConfigured = errors.New("create_booking: business hours are not configured")

	// ErrSlotNoLongerAvailable возвращается, когда слот не проходит повторную
	// валидацию или отклонён удалённым календарём. Клиенту предлагается
	// выбрать другое время.
	ErrSlotNoLongerAvailable = errors.New("create_booking: slot is no longer available")

	// ErrUpstreamUnavailable возвращается, когда удалённый календарь недоступен
	ErrUpstreamUnavailable = errors.New("create_booking: calendar system is unavailable")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
