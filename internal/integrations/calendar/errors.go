package calendar

import "errors"

var (
	// ErrSlotConflict возвращается, когда удалённый календарь отклонил
	// создание записи из-за пересечения с существующей.
	// Удалённая проверка - финальный арбитр: этот конфликт возможен даже
	// после успешной локальной валидации слота.
	ErrSlotConflict = errors.New("calendar client: slot conflict")

	// ErrUnavailable возвращается, когда удалённый календарь недоступен
	// или отвечает серверной ошибкой - клиенту следует повторить позже
	ErrUnavailable = errors.New("calendar client: service unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе календаря
	ErrInvalidResponse = errors.New("calendar client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendar client: internal error")
)
