package find_first_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/constraints"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
)

// UseCase use case поиска первого доступного слота
type UseCase struct {
	gateway      ConstraintsGateway
	civil        *civiltime.Adapter
	timeProvider TimeProvider
	logger       Logger
	opts         availability.Options
	horizonDays  int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateway ConstraintsGateway,
	civil *civiltime.Adapter,
	opts availability.Options,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 || horizonDays > domain.FirstAvailableHorizonDays {
		horizonDays = domain.FirstAvailableHorizonDays
	}
	return &UseCase{
		gateway:      gateway,
		civil:        civil,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		opts:         opts,
		horizonDays:  horizonDays,
	}
}

// Execute ищет самый ранний доступный слот в пределах горизонта.
// Отсутствие слотов - не ошибка: ответ приходит с Found=false.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindFirstSlot: service=%d, staff=%v", req.ServiceID, req.StaffID)

	// 1. Валидация входных данных
	if req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.StaffID != nil && *req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	// 2. Текущий момент в локальном времени салона
	moment := uc.civil.ToCivil(uc.timeProvider.Now())
	clock := availability.Clock{TodayKey: moment.DateKey, NowMinutes: moment.Minutes}

	// 3. Загружаем снапшот на весь горизонт
	endDate, err := civiltime.AddDays(moment.DateKey, uc.horizonDays-1)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute horizon end: %v", ErrInternal, err)
	}

	snap, err := uc.gateway.Load(ctx, constraints.LoadParams{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		FromDate:  moment.DateKey,
		ToDate:    endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, constraints.ErrServiceNotFound):
			uc.logger.Warn("FindFirstSlot: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		case errors.Is(err, constraints.ErrNotConfigured):
			uc.logger.Error("FindFirstSlot: business hours are not configured")
			return nil, ErrNotConfigured
		default:
			uc.logger.Error("FindFirstSlot: failed to load constraints: %v", err)
			return nil, fmt.Errorf("%w: failed to load constraints: %v", ErrInternal, err)
		}
	}

	// 4. Идём по дням до первого дня со слотом
	first, found, err := availability.ScanFirst(snap, moment.DateKey, uc.horizonDays, clock, uc.opts)
	if err != nil {
		uc.logger.Error("FindFirstSlot: scan failed: %v", err)
		return nil, fmt.Errorf("%w: scan failed: %v", ErrInternal, err)
	}
	if !found {
		uc.logger.Info("FindFirstSlot: no slots within %d days for service=%d", uc.horizonDays, req.ServiceID)
		return &Response{Found: false}, nil
	}

	uc.logger.Info("FindFirstSlot: found slot %s %s for service=%d",
		first.DateKey, first.Slot.StartMinutes, req.ServiceID)

	return &Response{
		Found:           true,
		Date:            first.DateKey,
		StartMinutes:    int(first.Slot.StartMinutes),
		StartTime:       first.Slot.StartMinutes.String(),
		Label:           first.Slot.Label(),
		DurationMinutes: first.Slot.DurationMinutes,
	}, nil
}
