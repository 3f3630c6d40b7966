package constraints

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type fakeScheduleRepo struct {
	hours    domain.WeekSchedule
	hoursErr error
	staff    *domain.StaffSchedule
	staffErr error
}

func (f *fakeScheduleRepo) GetBusinessHours(ctx context.Context) (domain.WeekSchedule, error) {
	return f.hours, f.hoursErr
}

func (f *fakeScheduleRepo) GetStaffSchedule(ctx context.Context, staffID int64) (*domain.StaffSchedule, error) {
	return f.staff, f.staffErr
}

type fakeTimeOffRepo struct {
	periods []domain.TimeOffPeriod
	err     error
}

func (f *fakeTimeOffRepo) ListForStaff(ctx context.Context, staffID int64, fromDate, toDate string) ([]domain.TimeOffPeriod, error) {
	return f.periods, f.err
}

type fakeTimeBlockRepo struct {
	blocks []domain.TimeBlock
	err    error
}

func (f *fakeTimeBlockRepo) ListForStaff(ctx context.Context, staffID int64) ([]domain.TimeBlock, error) {
	return f.blocks, f.err
}

type fakeBookingRepo struct {
	bookings  []domain.Booking
	err       error
	gotFilter *domain.StaffBookingsFilter
}

func (f *fakeBookingRepo) ListWithFilter(ctx context.Context, filter domain.StaffBookingsFilter) ([]domain.Booking, error) {
	f.gotFilter = &filter
	return f.bookings, f.err
}

type fakeServiceRepo struct {
	service     *domain.Service
	serviceErr  error
	override    *domain.DurationOverride
	overrideErr error
}

func (f *fakeServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return f.service, f.serviceErr
}

func (f *fakeServiceRepo) GetDurationOverride(ctx context.Context, serviceID, staffID int64) (*domain.DurationOverride, error) {
	return f.override, f.overrideErr
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func openWeek() domain.WeekSchedule {
	var week domain.WeekSchedule
	for i := range week {
		week[i] = domain.DayWindow{Weekday: time.Weekday(i), Open: 9 * 60, Close: 17 * 60}
	}
	return week
}

func newService(sched *fakeScheduleRepo, off *fakeTimeOffRepo, blocks *fakeTimeBlockRepo, bookings *fakeBookingRepo, svc *fakeServiceRepo) *Service {
	return New(sched, off, blocks, bookings, svc, nopLogger{})
}

func TestLoad_NoStaffSkipsStaffLayers(t *testing.T) {
	sched := &fakeScheduleRepo{hours: openWeek(), staffErr: errors.New("must not be called")}
	off := &fakeTimeOffRepo{err: errors.New("must not be called")}
	blocks := &fakeTimeBlockRepo{err: errors.New("must not be called")}
	bookings := &fakeBookingRepo{}
	svc := &fakeServiceRepo{service: &domain.Service{ID: 1, DurationMinutes: 45}}

	snap, err := newService(sched, off, blocks, bookings, svc).Load(context.Background(), LoadParams{
		ServiceID: 1,
		FromDate:  "2026-06-01",
		ToDate:    "2026-06-07",
	})

	require.NoError(t, err)
	assert.Nil(t, snap.Staff)
	assert.Empty(t, snap.TimeOff)
	assert.Empty(t, snap.Blocks)
	assert.Empty(t, snap.Bookings)
	assert.Nil(t, bookings.gotFilter)
	assert.Equal(t, 45, snap.DurationMinutes)
}

func TestLoad_StaffLayersPopulated(t *testing.T) {
	staffID := int64(7)
	sched := &fakeScheduleRepo{
		hours: openWeek(),
		staff: &domain.StaffSchedule{StaffID: staffID, SaturdayOff: true},
	}
	off := &fakeTimeOffRepo{periods: []domain.TimeOffPeriod{{StaffID: staffID, StartDate: "2026-06-03", EndDate: "2026-06-04"}}}
	blocks := &fakeTimeBlockRepo{blocks: []domain.TimeBlock{{StaffID: staffID, Weekdays: []time.Weekday{time.Monday}, Start: 12 * 60, End: 13 * 60}}}
	bookings := &fakeBookingRepo{bookings: []domain.Booking{{
		ID:           1,
		StaffID:      &staffID,
		DateKey:      "2026-06-02",
		StartMinutes: types.MinuteOfDay(10 * 60),
		EndMinutes:   types.MinuteOfDay(10*60 + 45),
		Status:       domain.StatusConfirmed,
	}}}
	svc := &fakeServiceRepo{
		service:     &domain.Service{ID: 1, DurationMinutes: 45},
		overrideErr: serviceRepo.ErrOverrideNotFound,
	}

	snap, err := newService(sched, off, blocks, bookings, svc).Load(context.Background(), LoadParams{
		ServiceID: 1,
		StaffID:   ptr.Ptr(staffID),
		FromDate:  "2026-06-01",
		ToDate:    "2026-06-07",
	})

	require.NoError(t, err)
	require.NotNil(t, snap.Staff)
	assert.True(t, snap.Staff.SaturdayOff)
	assert.Len(t, snap.TimeOff, 1)
	assert.Len(t, snap.Blocks, 1)
	assert.Len(t, snap.Bookings, 1)
	assert.Equal(t, 45, snap.DurationMinutes)

	require.NotNil(t, bookings.gotFilter)
	require.NotNil(t, bookings.gotFilter.StaffID)
	assert.Equal(t, staffID, *bookings.gotFilter.StaffID)
	assert.False(t, bookings.gotFilter.IncludeInactive)
}

func TestLoad_DurationOverrideApplied(t *testing.T) {
	staffID := int64(7)
	sched := &fakeScheduleRepo{hours: openWeek(), staffErr: scheduleRepo.ErrStaffScheduleNotFound}
	svc := &fakeServiceRepo{
		service:  &domain.Service{ID: 1, DurationMinutes: 45},
		override: &domain.DurationOverride{ServiceID: 1, StaffID: staffID, DurationMinutes: 60},
	}

	snap, err := newService(sched, &fakeTimeOffRepo{}, &fakeTimeBlockRepo{}, &fakeBookingRepo{}, svc).Load(context.Background(), LoadParams{
		ServiceID: 1,
		StaffID:   ptr.Ptr(staffID),
		FromDate:  "2026-06-01",
		ToDate:    "2026-06-07",
	})

	require.NoError(t, err)
	assert.Equal(t, 60, snap.DurationMinutes)
	// Графика у мастера нет - работают часы салона без модификаций
	assert.Nil(t, snap.Staff)
}

func TestLoad_MissingBusinessHoursIsHardError(t *testing.T) {
	sched := &fakeScheduleRepo{hoursErr: scheduleRepo.ErrBusinessHoursNotFound}
	svc := &fakeServiceRepo{service: &domain.Service{ID: 1, DurationMinutes: 45}}

	_, err := newService(sched, &fakeTimeOffRepo{}, &fakeTimeBlockRepo{}, &fakeBookingRepo{}, svc).Load(context.Background(), LoadParams{
		ServiceID: 1,
		FromDate:  "2026-06-01",
		ToDate:    "2026-06-07",
	})

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestLoad_UnknownServiceIsHardError(t *testing.T) {
	sched := &fakeScheduleRepo{hours: openWeek()}
	svc := &fakeServiceRepo{serviceErr: serviceRepo.ErrServiceNotFound}

	_, err := newService(sched, &fakeTimeOffRepo{}, &fakeTimeBlockRepo{}, &fakeBookingRepo{}, svc).Load(context.Background(), LoadParams{
		ServiceID: 99,
		FromDate:  "2026-06-01",
		ToDate:    "2026-06-07",
	})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestLoad_StaffLayerFailuresDegrade(t *testing.T) {
	staffID := int64(7)
	boom := errors.New("connection refused")
	sched := &fakeScheduleRepo{hours: openWeek(), staffErr: boom}
	off := &fakeTimeOffRepo{err: boom}
	blocks := &fakeTimeBlockRepo{err: boom}
	bookings := &fakeBookingRepo{err: boom}
	svc := &fakeServiceRepo{
		service:     &domain.Service{ID: 1, DurationMinutes: 45},
		overrideErr: boom,
	}

	snap, err := newService(sched, off, blocks, bookings, svc).Load(context.Background(), LoadParams{
		ServiceID: 1,
		StaffID:   ptr.Ptr(staffID),
		FromDate:  "2026-06-01",
		ToDate:    "2026-06-07",
	})

	require.NoError(t, err)
	assert.Nil(t, snap.Staff)
	assert.Empty(t, snap.TimeOff)
	assert.Empty(t, snap.Blocks)
	assert.Empty(t, snap.Bookings)
	assert.Equal(t, 45, snap.DurationMinutes)
}

func TestLoad_StorageFailureOnHoursIsInternal(t *testing.T) {
	sched := &fakeScheduleRepo{hoursErr: errors.New("connection refused")}
	svc := &fakeServiceRepo{service: &domain.Service{ID: 1, DurationMinutes: 45}}

	_, err := newService(sched, &fakeTimeOffRepo{}, &fakeTimeBlockRepo{}, &fakeBookingRepo{}, svc).Load(context.Background(), LoadParams{
		ServiceID: 1,
		FromDate:  "2026-06-01",
		ToDate:    "2026-06-07",
	})

	assert.ErrorIs(t, err, ErrInternal)
}
