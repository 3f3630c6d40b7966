package calendar

import "time"

// CreateAppointmentRequest запрос на создание записи в удалённом календаре
type CreateAppointmentRequest struct {
	ServiceID int64     `json:"serviceId"`
	StaffID   *int64    `json:"staffId,omitempty"`
	ContactID int64     `json:"contactId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Notes     *string   `json:"notes,omitempty"`

	// SkipAvailabilityCheck всегда false: удалённый календарь обязан
	// выполнить собственную авторитетную проверку пересечений.
	// Локальная валидация - только быстрая предварительная фильтрация.
	SkipAvailabilityCheck bool `json:"skipAvailabilityCheck"`
}

// Appointment запись, созданная в удалённом календаре
type Appointment struct {
	ID        string    `json:"id"`
	ServiceID int64     `json:"serviceId"`
	StaffID   *int64    `json:"staffId,omitempty"`
	ContactID int64     `json:"contactId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
}

// ErrorResponse модель ошибки от календаря
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
