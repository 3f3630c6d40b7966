package schedule

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
)

// timeOffLookaheadDays горизонт показа предстоящих отсутствий мастера
const timeOffLookaheadDays = 30

// Service сервис расписания: часы салона и график мастера
type Service struct {
	scheduleRepo ScheduleRepository
	timeOffRepo  TimeOffRepository
	civil        *civiltime.Adapter
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	timeOffRepo TimeOffRepository,
	civil *civiltime.Adapter,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		timeOffRepo:  timeOffRepo,
		civil:        civil,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetSchedule возвращает недельные часы салона и, если указан мастер, его
// график с предстоящими отсутствиями на ближайшие 30 дней.
func (s *Service) GetSchedule(ctx context.Context, staffID *int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule, staff=%v", staffID)

	hours, err := s.scheduleRepo.GetBusinessHours(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrBusinessHoursNotFound) {
			s.logger.Warn("GetSchedule: business hours are not configured")
			return nil, ErrNotConfigured
		}
		s.logger.Error("GetSchedule: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	resp := &models.ScheduleResponse{
		Week: models.FromDomainWeek(hours),
	}

	if staffID == nil {
		return resp, nil
	}

	staffResp := &models.StaffScheduleResponse{
		StaffID: *staffID,
		TimeOff: []models.TimeOffResponse{},
	}

	staff, err := s.scheduleRepo.GetStaffSchedule(ctx, *staffID)
	switch {
	case err == nil:
		staffResp.HasOwnHours = true
		staffResp.Week = models.FromDomainWeek(staff.Hours)
		staffResp.SaturdayOff = staff.SaturdayOff
		staffResp.SundayOff = staff.SundayOff
	case errors.Is(err, scheduleRepo.ErrStaffScheduleNotFound):
		// Своего графика нет - действуют часы салона
	default:
		s.logger.Error("GetSchedule: failed to get staff schedule for staff %d: %v", *staffID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	today := s.civil.Today(s.timeProvider.Now())
	horizon, err := civiltime.AddDays(today, timeOffLookaheadDays)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSchedule - invalid today key: %v", ErrInternal, err)
	}

	periods, err := s.timeOffRepo.ListForStaff(ctx, *staffID, today, horizon)
	if err != nil {
		// Отсутствия - справочная информация, без них расписание всё ещё полезно
		s.logger.Warn("GetSchedule: failed to list time off for staff %d: %v", *staffID, err)
	} else {
		staffResp.TimeOff = models.FromDomainTimeOff(periods)
	}

	resp.Staff = staffResp
	return resp, nil
}
