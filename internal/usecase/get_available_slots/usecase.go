package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/constraints"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
)

// UseCase use case сканирования доступных слотов на диапазон дней
type UseCase struct {
	gateway      ConstraintsGateway
	civil        *civiltime.Adapter
	timeProvider TimeProvider
	logger       Logger
	opts         availability.Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateway ConstraintsGateway,
	civil *civiltime.Adapter,
	opts availability.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		gateway:      gateway,
		civil:        civil,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		opts:         opts,
	}
}

// Execute выполняет сканирование слотов.
// Снапшот ограничений загружается один раз на весь диапазон - ответ детерминирован
// относительно этого снапшота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, staff=%v, days=%d, startDate=%q",
		req.ServiceID, req.StaffID, req.Days, req.StartDate)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущий момент в локальном времени салона
	moment := uc.civil.ToCivil(uc.timeProvider.Now())
	clock := availability.Clock{TodayKey: moment.DateKey, NowMinutes: moment.Minutes}

	// 3. Подставляем значения по умолчанию
	days := req.Days
	if days == 0 {
		days = domain.DefaultScanDays
	}
	startDate := req.StartDate
	if startDate == "" {
		startDate = moment.DateKey
	}
	if err := validateStartDate(startDate, moment.DateKey); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Загружаем снапшот ограничений на весь диапазон
	endDate, err := civiltime.AddDays(startDate, days-1)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute range end: %v", ErrInternal, err)
	}

	snap, err := uc.gateway.Load(ctx, constraints.LoadParams{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		FromDate:  startDate,
		ToDate:    endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, constraints.ErrServiceNotFound):
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		case errors.Is(err, constraints.ErrNotConfigured):
			uc.logger.Error("GetAvailableSlots: business hours are not configured")
			return nil, ErrNotConfigured
		default:
			uc.logger.Error("GetAvailableSlots: failed to load constraints: %v", err)
			return nil, fmt.Errorf("%w: failed to load constraints: %v", ErrInternal, err)
		}
	}

	// 5. Сканируем диапазон по одному снапшоту
	byDay, err := availability.ScanRange(snap, startDate, days, clock, uc.opts)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: scan failed: %v", err)
		return nil, fmt.Errorf("%w: scan failed: %v", ErrInternal, err)
	}

	// 6. Сортируем дни по возрастанию
	keys := make([]string, 0, len(byDay))
	for key := range byDay {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	daySlots := make([]DaySlots, 0, len(keys))
	total := 0
	for _, key := range keys {
		slots := make([]Slot, 0, len(byDay[key]))
		for _, s := range byDay[key] {
			slots = append(slots, toSlot(s))
		}
		total += len(slots)
		daySlots = append(daySlots, DaySlots{Date: key, Slots: slots})
	}

	uc.logger.Info("GetAvailableSlots: found %d slots across %d days for service=%d",
		total, len(daySlots), req.ServiceID)

	return &Response{
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		StartDate:       startDate,
		Days:            days,
		DurationMinutes: snap.DurationMinutes,
		DaySlots:        daySlots,
	}, nil
}
