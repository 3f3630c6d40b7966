package schedule

import (
	"context"
	"time"

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

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
