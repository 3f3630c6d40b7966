package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	calendarClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/calendar"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/notifier"
	"github.com/m04kA/SMC-AppointmentService/internal/service/constraints"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeGateway struct {
	snap      *availability.Snapshot
	err       error
	gotParams *constraints.LoadParams
}

func (f *fakeGateway) Load(ctx context.Context, params constraints.LoadParams) (*availability.Snapshot, error) {
	f.gotParams = &params
	return f.snap, f.err
}

type fakeCalendar struct {
	appointment *calendarClient.Appointment
	err         error
	gotReq      *calendarClient.CreateAppointmentRequest
}

func (f *fakeCalendar) CreateAppointment(ctx context.Context, req *calendarClient.CreateAppointmentRequest) (*calendarClient.Appointment, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.appointment, nil
}

type fakeNotifier struct {
	err      error
	gotEvent *notifier.BookingEvent
}

func (f *fakeNotifier) SendBookingCreated(ctx context.Context, event *notifier.BookingEvent) error {
	f.gotEvent = event
	return f.err
}

type fakeBookingRepo struct {
	err     error
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b.ID = 42
	f.created = b
	return b, nil
}

type fakeServiceRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	gateway  *fakeGateway
	calendar *fakeCalendar
	notifier *fakeNotifier
	bookings *fakeBookingRepo
	services *fakeServiceRepo
	uc       *UseCase
}

func openSnapshot() *availability.Snapshot {
	var week domain.WeekSchedule
	for i := range week {
		week[i] = domain.DayWindow{Weekday: time.Weekday(i), Open: 9 * 60, Close: 17 * 60}
	}
	return &availability.Snapshot{Business: week, DurationMinutes: 45}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	civil, err := civiltime.New("America/Chicago")
	require.NoError(t, err)

	f := &fixture{
		gateway:  &fakeGateway{snap: openSnapshot()},
		calendar: &fakeCalendar{appointment: &calendarClient.Appointment{ID: "evt_9001", Status: "confirmed"}},
		notifier: &fakeNotifier{},
		bookings: &fakeBookingRepo{},
		services: &fakeServiceRepo{service: &domain.Service{ID: 1, Name: "Haircut", DurationMinutes: 45}},
	}
	f.uc = NewUseCase(
		f.gateway, f.calendar, f.notifier, f.bookings, f.services,
		civil, availability.Options{StepMinutes: 30, BufferMinutes: 15}, nopLogger{},
	)
	// 2026-06-15 12:00 CDT
	f.uc.timeProvider = fixedTime{time.Date(2026, 6, 15, 17, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		ContactID:    100,
		ServiceID:    1,
		Date:         "2026-06-16",
		StartMinutes: types.MinuteOfDay(10 * 60),
	}
}

func TestExecute_ConfirmsBooking(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "evt_9001", resp.CalendarEventID)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:45", resp.EndTime)
	assert.Equal(t, "10:00 AM", resp.Label)
	assert.Empty(t, resp.Warnings)

	// Снапшот перепроверки сужен до дня слота
	require.NotNil(t, f.gateway.gotParams)
	assert.Equal(t, "2026-06-16", f.gateway.gotParams.FromDate)
	assert.Equal(t, "2026-06-16", f.gateway.gotParams.ToDate)

	// 10:00 CDT = 15:00 UTC; удалённая проверка пересечений включена
	require.NotNil(t, f.calendar.gotReq)
	assert.Equal(t, time.Date(2026, 6, 16, 15, 0, 0, 0, time.UTC), f.calendar.gotReq.StartTime.UTC())
	assert.Equal(t, time.Date(2026, 6, 16, 15, 45, 0, 0, time.UTC), f.calendar.gotReq.EndTime.UTC())
	assert.False(t, f.calendar.gotReq.SkipAvailabilityCheck)

	// Зеркало и уведомление получили подтверждённую запись
	require.NotNil(t, f.bookings.created)
	assert.Equal(t, "evt_9001", f.bookings.created.CalendarEventID)
	require.NotNil(t, f.notifier.gotEvent)
	assert.Equal(t, "evt_9001", f.notifier.gotEvent.CalendarEventID)
}

func TestExecute_RemoteConflictRejectsWithoutMirrorWrite(t *testing.T) {
	f := newFixture(t)
	// Локальная проверка проходит, но календарь видит параллельную запись
	f.calendar.err = calendarClient.ErrSlotConflict

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Nil(t, f.bookings.created)
	assert.Nil(t, f.notifier.gotEvent)
}

func TestExecute_LocalRevalidationRejectsTakenSlot(t *testing.T) {
	f := newFixture(t)
	staffID := int64(7)
	f.gateway.snap.Staff = &domain.StaffSchedule{StaffID: staffID, Hours: f.gateway.snap.Business}
	f.gateway.snap.Bookings = []domain.Booking{{
		StaffID:      &staffID,
		DateKey:      "2026-06-16",
		StartMinutes: types.MinuteOfDay(10 * 60),
		EndMinutes:   types.MinuteOfDay(10*60 + 45),
		Status:       domain.StatusConfirmed,
	}}

	req := validRequest()
	req.StaffID = &staffID
	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNoLongerAvailable)
	assert.Nil(t, f.calendar.gotReq)
}

func TestExecute_RemoteOutageIsUpstreamUnavailable(t *testing.T) {
	f := newFixture(t)
	f.calendar.err = calendarClient.ErrUnavailable

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_SideEffectFailuresAreWarnings(t *testing.T) {
	f := newFixture(t)
	f.bookings.err = assert.AnError
	f.notifier.err = notifier.ErrDeliveryFailed

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "evt_9001", resp.CalendarEventID)
	assert.Zero(t, resp.ID)
	assert.ElementsMatch(t, []string{WarnMirrorWriteFailed, WarnNotificationFailed}, resp.Warnings)
}

func TestExecute_PastDateRejected(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = "2026-06-14"
	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_NonexistentLocalTimeRejected(t *testing.T) {
	f := newFixture(t)
	// Салон открыт ночью, чтобы слот 02:30 проходил локальную проверку
	var week domain.WeekSchedule
	for i := range week {
		week[i] = domain.DayWindow{Weekday: time.Weekday(i), Open: 0, Close: 6 * 60}
	}
	f.gateway.snap = &availability.Snapshot{Business: week, DurationMinutes: 45}
	// 2026-03-01 01:00 CST, до перевода часов
	f.uc.timeProvider = fixedTime{time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)}

	req := validRequest()
	req.Date = "2026-03-08" // весенний перевод: 02:00-03:00 не существует
	req.StartMinutes = types.MinuteOfDay(2*60 + 30)
	_, err := f.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Nil(t, f.calendar.gotReq)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	f := newFixture(t)
	f.services.service = nil
	f.services.err = serviceRepo.ErrServiceNotFound

	_, err := f.uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrServiceNotFound)
}
