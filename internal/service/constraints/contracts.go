package constraints

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	GetBusinessHours(ctx context.Context) (domain.WeekSchedule, error)
	GetStaffSchedule(ctx context.Context, staffID int64) (*domain.StaffSchedule, error)
}

// TimeOffRepository интерфейс репозитория периодов отсутствия
type TimeOffRepository interface {
	ListForStaff(ctx context.Context, staffID int64, fromDate, toDate string) ([]domain.TimeOffPeriod, error)
}

// TimeBlockRepository интерфейс репозитория временных блокировок
type TimeBlockRepository interface {
	ListForStaff(ctx context.Context, staffID int64) ([]domain.TimeBlock, error)
}

// BookingRepository интерфейс локального зеркала бронирований
type BookingRepository interface {
	ListWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]domain.Booking, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetDurationOverride(ctx context.Context, serviceID, staffID int64) (*domain.DurationOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
