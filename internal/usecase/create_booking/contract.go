package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/notifier"
	"github.com/m04kA/SMC-AppointmentService/internal/service/constraints"
)

// ConstraintsGateway интерфейс шлюза ограничений
type ConstraintsGateway interface {
	Load(ctx context.Context, params constraints.LoadParams) (*availability.Snapshot, error)
}

// CalendarClient интерфейс клиента удалённого календаря
type CalendarClient interface {
	CreateAppointment(ctx context.Context, req *calendar.CreateAppointmentRequest) (*calendar.Appointment, error)
}

// NotifierClient интерфейс клиента webhook-уведомлений
type NotifierClient interface {
	SendBookingCreated(ctx context.Context, event *notifier.BookingEvent) error
}

// BookingRepository интерфейс локального зеркала бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
