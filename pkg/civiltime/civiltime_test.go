package civiltime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const testZone = "America/Chicago"

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()
	a, err := New(testZone)
	require.NoError(t, err)
	return a
}

func TestToCivil(t *testing.T) {
	a := newTestAdapter(t)

	// 2026-06-15 19:30 UTC = 14:30 CDT
	instant := time.Date(2026, 6, 15, 19, 30, 0, 0, time.UTC)
	m := a.ToCivil(instant)

	assert.Equal(t, "2026-06-15", m.DateKey)
	assert.Equal(t, types.MinuteOfDay(14*60+30), m.Minutes)
}

func TestToCivil_CrossesMidnight(t *testing.T) {
	a := newTestAdapter(t)

	// 2026-06-16 03:10 UTC is still 2026-06-15 22:10 in Chicago
	instant := time.Date(2026, 6, 16, 3, 10, 0, 0, time.UTC)
	m := a.ToCivil(instant)

	assert.Equal(t, "2026-06-15", m.DateKey)
	assert.Equal(t, types.MinuteOfDay(22*60+10), m.Minutes)
}

func TestRoundTrip(t *testing.T) {
	a := newTestAdapter(t)

	cases := []time.Time{
		time.Date(2026, 1, 10, 15, 0, 0, 0, time.UTC),  // winter, CST
		time.Date(2026, 7, 10, 15, 0, 0, 0, time.UTC),  // summer, CDT
		time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC),   // spring-forward day, after transition
		time.Date(2026, 11, 1, 0, 30, 0, 0, time.UTC),  // fall-back day, before transition
		time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC),
	}

	for _, instant := range cases {
		m := a.ToCivil(instant)
		back, err := a.ToInstant(m.DateKey, m.Minutes)
		require.NoError(t, err, "round trip for %s", instant)
		assert.True(t, back.Equal(instant), "round trip for %s: got %s", instant, back)
	}
}

func TestToInstant_SpringForwardGap(t *testing.T) {
	a := newTestAdapter(t)

	// 2026-03-08 02:30 does not exist in Chicago: clocks jump 02:00 -> 03:00.
	_, err := a.ToInstant("2026-03-08", types.MinuteOfDay(2*60+30))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonexistentTime)

	// The surrounding times exist.
	before, err := a.ToInstant("2026-03-08", types.MinuteOfDay(1*60+30))
	require.NoError(t, err)
	after, err := a.ToInstant("2026-03-08", types.MinuteOfDay(3*60+30))
	require.NoError(t, err)

	// Only one real hour separates 01:30 and 03:30 on the transition day.
	assert.Equal(t, time.Hour, after.Sub(before))
}

func TestToInstant_FallBackPicksFirstOccurrence(t *testing.T) {
	a := newTestAdapter(t)

	// 2026-11-01 01:30 occurs twice in Chicago; the adapter resolves the
	// earlier (CDT) occurrence.
	got, err := a.ToInstant("2026-11-01", types.MinuteOfDay(1*60+30))
	require.NoError(t, err)

	want := time.Date(2026, 11, 1, 6, 30, 0, 0, time.UTC) // 01:30 CDT
	assert.True(t, got.Equal(want), "got %s, want %s", got, want)
}

func TestToInstant_InvalidInput(t *testing.T) {
	a := newTestAdapter(t)

	_, err := a.ToInstant("2026-13-01", 600)
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = a.ToInstant("2026-06-15", types.MinuteOfDay(1440))
	assert.ErrorIs(t, err, ErrInvalidMinutes)

	_, err = a.ToInstant("2026-06-15", types.MinuteOfDay(-1))
	assert.ErrorIs(t, err, ErrInvalidMinutes)
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-02-27", 2)
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", got)

	got, err = AddDays("2026-01-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", got)

	_, err = AddDays("not-a-date", 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2026-03-08")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	wd, err = Weekday("2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, wd)
}
