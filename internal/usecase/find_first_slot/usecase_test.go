package find_first_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/availability"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/constraints"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
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

// 2026-06-15 12:00 CDT
func noonJune15() time.Time {
	return time.Date(2026, 6, 15, 17, 0, 0, 0, time.UTC)
}

func openSnapshot() *availability.Snapshot {
	var week domain.WeekSchedule
	for i := range week {
		week[i] = domain.DayWindow{Weekday: time.Weekday(i), Open: 9 * 60, Close: 17 * 60}
	}
	return &availability.Snapshot{Business: week, DurationMinutes: 45}
}

func newUseCase(t *testing.T, gw *fakeGateway) *UseCase {
	t.Helper()
	uc := NewUseCase(gw, chicago(t), availability.Options{StepMinutes: 30, BufferMinutes: 15}, 0, nopLogger{})
	uc.timeProvider = fixedTime{noonJune15()}
	return uc
}

func TestExecute_FindsFirstSlotToday(t *testing.T) {
	gw := &fakeGateway{snap: openSnapshot()}
	uc := newUseCase(t, gw)

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1})

	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "2026-06-15", resp.Date)
	// Порог now+buffer выравнивается вверх по сетке
	assert.Equal(t, 12*60+30, resp.StartMinutes)
	assert.Equal(t, "12:30", resp.StartTime)
	assert.Equal(t, "12:30 PM", resp.Label)
	assert.Equal(t, 45, resp.DurationMinutes)

	// Снапшот грузится на весь горизонт 120 дней
	require.NotNil(t, gw.gotParams)
	assert.Equal(t, "2026-06-15", gw.gotParams.FromDate)
	assert.Equal(t, "2026-10-12", gw.gotParams.ToDate)
}

func TestExecute_SkipsFullyBlockedDays(t *testing.T) {
	snap := openSnapshot()
	// Отпуск до конца июня: первый доступный день - 1 июля
	snap.Staff = &domain.StaffSchedule{StaffID: 7, Hours: snap.Business}
	snap.TimeOff = []domain.TimeOffPeriod{{StaffID: 7, StartDate: "2026-06-01", EndDate: "2026-06-30"}}
	uc := newUseCase(t, &fakeGateway{snap: snap})

	staffID := int64(7)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, StaffID: &staffID})

	require.NoError(t, err)
	assert.True(t, resp.Found)
	assert.Equal(t, "2026-07-01", resp.Date)
	assert.Equal(t, 9*60, resp.StartMinutes)
}

func TestExecute_FullHorizonIsNotAnError(t *testing.T) {
	snap := openSnapshot()
	snap.Staff = &domain.StaffSchedule{StaffID: 7, Hours: snap.Business}
	// Отсутствие накрывает весь 120-дневный горизонт
	snap.TimeOff = []domain.TimeOffPeriod{{StaffID: 7, StartDate: "2026-06-01", EndDate: "2026-12-31"}}
	uc := newUseCase(t, &fakeGateway{snap: snap})

	staffID := int64(7)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 1, StaffID: &staffID})

	require.NoError(t, err)
	assert.False(t, resp.Found)
	assert.Empty(t, resp.Date)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newUseCase(t, &fakeGateway{err: constraints.ErrServiceNotFound})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99})

	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidServiceID(t *testing.T) {
	uc := newUseCase(t, &fakeGateway{snap: openSnapshot()})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
