package constraints

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// Service собирает снапшот ограничений для расчёта доступности.
// Все независимые выборки выполняются параллельно; снапшот читается один раз
// на запрос, дальше движок работает только с ним.
type Service struct {
	schedules  ScheduleRepository
	timeOff    TimeOffRepository
	timeBlocks TimeBlockRepository
	bookings   BookingRepository
	services   ServiceRepository
	logger     Logger
}

func New(
	schedules ScheduleRepository,
	timeOff TimeOffRepository,
	timeBlocks TimeBlockRepository,
	bookings BookingRepository,
	services ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		schedules:  schedules,
		timeOff:    timeOff,
		timeBlocks: timeBlocks,
		bookings:   bookings,
		services:   services,
		logger:     logger,
	}
}

// LoadParams параметры сборки снапшота
type LoadParams struct {
	ServiceID int64
	StaffID   *int64 // nil - мастер не выбран, слои мастера не загружаются
	FromDate  string // YYYY-MM-DD, включительно
	ToDate    string // YYYY-MM-DD, включительно
}

// Load загружает все ограничения для диапазона дат одним снапшотом.
//
// Рабочие часы салона и услуга обязательны: без них доступность не
// считается. Слои мастера (график, отсутствия, блокировки, брони) при
// ошибке чтения деградируют до пустых с предупреждением в лог - лучше
// показать чуть больше слотов, чем отказать; финальную проверку всё равно
// делает удалённый календарь при создании записи.
func (s *Service) Load(ctx context.Context, params LoadParams) (*availability.Snapshot, error) {
	snap := &availability.Snapshot{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hours, err := s.schedules.GetBusinessHours(gctx)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrBusinessHoursNotFound) {
				return ErrNotConfigured
			}
			s.logger.Error("constraints.Load: failed to get business hours: %v", err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		snap.Business = hours
		return nil
	})

	g.Go(func() error {
		svc, err := s.services.GetByID(gctx, params.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			s.logger.Error("constraints.Load: failed to get service %d: %v", params.ServiceID, err)
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		snap.DurationMinutes = svc.DurationMinutes

		if params.StaffID != nil {
			override, err := s.services.GetDurationOverride(gctx, params.ServiceID, *params.StaffID)
			switch {
			case err == nil:
				snap.DurationMinutes = override.DurationMinutes
			case errors.Is(err, serviceRepo.ErrOverrideNotFound):
				// Переопределения нет - остаётся базовая длительность
			default:
				s.logger.Warn("constraints.Load: failed to get duration override for service %d staff %d: %v", params.ServiceID, *params.StaffID, err)
			}
		}
		return nil
	})

	if params.StaffID != nil {
		staffID := *params.StaffID

		g.Go(func() error {
			staff, err := s.schedules.GetStaffSchedule(gctx, staffID)
			switch {
			case err == nil:
				snap.Staff = staff
			case errors.Is(err, scheduleRepo.ErrStaffScheduleNotFound):
				// У мастера нет своего графика - работают часы салона
			default:
				s.logger.Warn("constraints.Load: failed to get staff schedule for staff %d: %v", staffID, err)
			}
			return nil
		})

		g.Go(func() error {
			periods, err := s.timeOff.ListForStaff(gctx, staffID, params.FromDate, params.ToDate)
			if err != nil {
				s.logger.Warn("constraints.Load: failed to list time off for staff %d: %v", staffID, err)
				return nil
			}
			snap.TimeOff = periods
			return nil
		})

		g.Go(func() error {
			blocks, err := s.timeBlocks.ListForStaff(gctx, staffID)
			if err != nil {
				s.logger.Warn("constraints.Load: failed to list time blocks for staff %d: %v", staffID, err)
				return nil
			}
			snap.Blocks = blocks
			return nil
		})

		g.Go(func() error {
			list, err := s.bookings.ListWithFilter(gctx, domain.StaffBookingsFilter{
				StaffID:   &staffID,
				StartDate: &params.FromDate,
				EndDate:   &params.ToDate,
			})
			if err != nil {
				s.logger.Warn("constraints.Load: failed to list bookings for staff %d: %v", staffID, err)
				return nil
			}
			snap.Bookings = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return snap, nil
}
