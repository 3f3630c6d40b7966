package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
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
	gotFrom string
	gotTo   string
}

func (f *fakeTimeOffRepo) ListForStaff(ctx context.Context, staffID int64, fromDate, toDate string) ([]domain.TimeOffPeriod, error) {
	f.gotFrom = fromDate
	f.gotTo = toDate
	return f.periods, f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func chicago(t *testing.T) *civiltime.Adapter {
	t.Helper()
	adapter, err := civiltime.New("America/Chicago")
	require.NoError(t, err)
	return adapter
}

func weekdayWeek() domain.WeekSchedule {
	var week domain.WeekSchedule
	for i := range week {
		wd := time.Weekday(i)
		if wd == time.Sunday {
			week[i] = domain.DayWindow{Weekday: wd, Closed: true}
			continue
		}
		week[i] = domain.DayWindow{Weekday: wd, Open: 9 * 60, Close: 17 * 60}
	}
	return week
}

// 2026-06-15 12:00 CDT
func noonJune15() time.Time {
	return time.Date(2026, 6, 15, 17, 0, 0, 0, time.UTC)
}

func TestGetSchedule_BusinessOnly(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{hours: weekdayWeek()}, &fakeTimeOffRepo{}, chicago(t), fixedTime{noonJune15()}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, resp.Week, 7)
	assert.Nil(t, resp.Staff)

	sunday := resp.Week[0]
	assert.Equal(t, "Sunday", sunday.Weekday)
	assert.True(t, sunday.Closed)
	assert.Empty(t, sunday.Open)

	monday := resp.Week[1]
	assert.Equal(t, "Monday", monday.Weekday)
	assert.Equal(t, "09:00", monday.Open)
	assert.Equal(t, "17:00", monday.Close)
}

func TestGetSchedule_StaffWithOwnHours(t *testing.T) {
	off := &fakeTimeOffRepo{periods: []domain.TimeOffPeriod{{StaffID: 7, StartDate: "2026-06-20", EndDate: "2026-06-22"}}}
	sched := &fakeScheduleRepo{
		hours: weekdayWeek(),
		staff: &domain.StaffSchedule{StaffID: 7, Hours: weekdayWeek(), SaturdayOff: true},
	}
	svc := NewService(sched, off, chicago(t), fixedTime{noonJune15()}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), ptr.Ptr(int64(7)))

	require.NoError(t, err)
	require.NotNil(t, resp.Staff)
	assert.True(t, resp.Staff.HasOwnHours)
	assert.True(t, resp.Staff.SaturdayOff)
	require.Len(t, resp.Staff.TimeOff, 1)
	assert.Equal(t, "2026-06-20", resp.Staff.TimeOff[0].StartDate)

	// Окно отсутствий: от сегодня до сегодня+30
	assert.Equal(t, "2026-06-15", off.gotFrom)
	assert.Equal(t, "2026-07-15", off.gotTo)
}

func TestGetSchedule_StaffFallsBackToBusinessHours(t *testing.T) {
	sched := &fakeScheduleRepo{hours: weekdayWeek(), staffErr: scheduleRepo.ErrStaffScheduleNotFound}
	svc := NewService(sched, &fakeTimeOffRepo{}, chicago(t), fixedTime{noonJune15()}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), ptr.Ptr(int64(7)))

	require.NoError(t, err)
	require.NotNil(t, resp.Staff)
	assert.False(t, resp.Staff.HasOwnHours)
	assert.Empty(t, resp.Staff.Week)
}

func TestGetSchedule_TimeOffFailureDegrades(t *testing.T) {
	sched := &fakeScheduleRepo{hours: weekdayWeek(), staffErr: scheduleRepo.ErrStaffScheduleNotFound}
	off := &fakeTimeOffRepo{err: errors.New("connection refused")}
	svc := NewService(sched, off, chicago(t), fixedTime{noonJune15()}, nopLogger{})

	resp, err := svc.GetSchedule(context.Background(), ptr.Ptr(int64(7)))

	require.NoError(t, err)
	require.NotNil(t, resp.Staff)
	assert.Empty(t, resp.Staff.TimeOff)
}

func TestGetSchedule_NotConfigured(t *testing.T) {
	sched := &fakeScheduleRepo{hoursErr: scheduleRepo.ErrBusinessHoursNotFound}
	svc := NewService(sched, &fakeTimeOffRepo{}, chicago(t), fixedTime{noonJune15()}, nopLogger{})

	_, err := svc.GetSchedule(context.Background(), nil)

	assert.ErrorIs(t, err, ErrNotConfigured)
}
