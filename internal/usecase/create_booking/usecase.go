package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	calendarClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/notifier"
	"github.com/m04kA/SMC-AppointmentService/internal/service/constraints"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
)

// UseCase use case создания бронирования.
//
// Протокол подтверждения: Validating (свежий снапшот на день слота,
// повторная локальная проверка) -> Submitting (удалённый календарь,
// единственная точка сериализации) -> Confirmed (best-effort зеркало и
// уведомление). Локальных блокировок нет: окончательное слово за
// удалённой проверкой пересечений.
type UseCase struct {
	gateway      ConstraintsGateway
	calendar     CalendarClient
	notifier     NotifierClient
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	civil        *civiltime.Adapter
	timeProvider TimeProvider
	logger       Logger
	opts         availability.Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	gateway ConstraintsGateway,
	calendar CalendarClient,
	notifier NotifierClient,
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	civil *civiltime.Adapter,
	opts availability.Options,
	logger Logger,
) *UseCase {
	return &UseCase{
		gateway:      gateway,
		calendar:     calendar,
		notifier:     notifier,
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		civil:        civil,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		opts:         opts,
	}
}

// Execute выполняет протокол подтверждения бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: contact=%d, service=%d, staff=%v, date=%s, start=%s",
		req.ContactID, req.ServiceID, req.StaffID, req.Date, req.StartMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущий момент в локальном времени салона
	moment := uc.civil.ToCivil(uc.timeProvider.Now())
	clock := availability.Clock{TodayKey: moment.DateKey, NowMinutes: moment.Minutes}

	if err := validateDate(req.Date, moment.DateKey); err != nil {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		return nil, err
	}

	// 3. Получаем услугу (название нужно для зеркала и уведомления)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Этап Validating: свежий снапшот, суженный до дня слота,
	// и повторная проверка одиночного слота
	snap, err := uc.gateway.Load(ctx, constraints.LoadParams{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		FromDate:  req.Date,
		ToDate:    req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, constraints.ErrServiceNotFound):
			return nil, ErrServiceNotFound
		case errors.Is(err, constraints.ErrNotConfigured):
			uc.logger.Error("CreateBooking: business hours are not configured")
			return nil, ErrNotConfigured
		default:
			uc.logger.Error("CreateBooking: failed to load constraints: %v", err)
			return nil, fmt.Errorf("%w: failed to load constraints: %v", ErrInternal, err)
		}
	}

	weekday, err := civiltime.Weekday(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !availability.AdmitSlot(snap, req.Date, weekday, req.StartMinutes, clock, uc.opts) {
		uc.logger.Warn("CreateBooking: slot %s %s rejected by local re-validation", req.Date, req.StartMinutes)
		return nil, ErrSlotNoLongerAvailable
	}

	// 5. Переводим слот в момент времени. Время внутри пропущенного
	// DST-часа не существует и никогда не предлагалось как слот.
	startAt, err := uc.civil.ToInstant(req.Date, req.StartMinutes)
	if err != nil {
		if errors.Is(err, civiltime.ErrNonexistentTime) {
			uc.logger.Warn("CreateBooking: %s %s does not exist in local time", req.Date, req.StartMinutes)
			return nil, fmt.Errorf("%w: requested local time does not exist", ErrInvalidInput)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endAt := startAt.Add(time.Duration(snap.DurationMinutes) * time.Minute)

	// 6. Этап Submitting: удалённый календарь выполняет авторитетную
	// проверку пересечений
	appointment, err := uc.calendar.CreateAppointment(ctx, &calendarClient.CreateAppointmentRequest{
		ServiceID: req.ServiceID,
		StaffID:   req.StaffID,
		ContactID: req.ContactID,
		StartTime: startAt,
		EndTime:   endAt,
		Notes:     req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, calendarClient.ErrSlotConflict):
			// Гонка: слот заняли между локальной проверкой и отправкой
			uc.logger.Warn("CreateBooking: remote calendar rejected slot %s %s: %v", req.Date, req.StartMinutes, err)
			return nil, ErrSlotNoLongerAvailable
		case errors.Is(err, calendarClient.ErrUnavailable):
			uc.logger.Error("CreateBooking: remote calendar unavailable: %v", err)
			return nil, ErrUpstreamUnavailable
		default:
			uc.logger.Error("CreateBooking: remote calendar error: %v", err)
			return nil, fmt.Errorf("%w: remote calendar error: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: appointment %s confirmed by remote calendar", appointment.ID)

	// 7. Этап Confirmed: побочные эффекты best-effort, запись уже создана
	var warnings []string

	endMinutes := req.StartMinutes.Add(snap.DurationMinutes)
	booking := &domain.Booking{
		CalendarEventID: appointment.ID,
		StaffID:         req.StaffID,
		ContactID:       req.ContactID,
		ServiceID:       req.ServiceID,
		DateKey:         req.Date,
		StartMinutes:    req.StartMinutes,
		EndMinutes:      endMinutes,
		Status:          domain.StatusConfirmed,
		ServiceName:     service.Name,
		Notes:           req.Notes,
	}

	mirrored, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: mirror write failed for event=%s: %v", appointment.ID, err)
		warnings = append(warnings, WarnMirrorWriteFailed)
	} else {
		booking = mirrored
	}

	err = uc.notifier.SendBookingCreated(ctx, &notifier.BookingEvent{
		CalendarEventID: appointment.ID,
		ServiceID:       req.ServiceID,
		ServiceName:     service.Name,
		StaffID:         req.StaffID,
		ContactID:       req.ContactID,
		Date:            req.Date,
		StartTime:       req.StartMinutes.String(),
		EndTime:         endMinutes.String(),
		Status:          string(domain.StatusConfirmed),
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: notification failed for event=%s: %v", appointment.ID, err)
		warnings = append(warnings, WarnNotificationFailed)
	}

	uc.logger.Info("CreateBooking: booking confirmed, event=%s, mirror id=%d, warnings=%d",
		appointment.ID, booking.ID, len(warnings))

	return &Response{
		ID:              booking.ID,
		CalendarEventID: appointment.ID,
		ContactID:       req.ContactID,
		ServiceID:       req.ServiceID,
		StaffID:         req.StaffID,
		ServiceName:     service.Name,
		Date:            req.Date,
		StartMinutes:    int(req.StartMinutes),
		StartTime:       req.StartMinutes.String(),
		EndTime:         endMinutes.String(),
		Label:           req.StartMinutes.Clock12(),
		DurationMinutes: snap.DurationMinutes,
		Status:          string(domain.StatusConfirmed),
		Notes:           req.Notes,
		StartAt:         startAt,
		Warnings:        warnings,
	}, nil
}
