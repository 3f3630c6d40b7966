// Package civiltime converts between instants and shop-local civil time.
//
// All schedule arithmetic in the service operates on {date key, minutes since
// local midnight} pairs; this package is the only place that knows about UTC
// offsets and DST transitions. Conversions never rely on a single offset
// lookup: the civil-to-instant direction iterates until the offset used to
// build the guess matches the offset in force at the guessed instant.
package civiltime

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// DateFormat is the canonical date key layout (YYYY-MM-DD).
const DateFormat = "2006-01-02"

var (
	// ErrInvalidDate is returned for a malformed date key.
	ErrInvalidDate = errors.New("civiltime: invalid date")

	// ErrInvalidMinutes is returned for minutes outside [0, 1440).
	ErrInvalidMinutes = errors.New("civiltime: minutes out of range")

	// ErrNonexistentTime is returned for civil times that are skipped by a
	// spring-forward DST transition and therefore correspond to no instant.
	ErrNonexistentTime = errors.New("civiltime: local time does not exist")
)

// Moment is a point in civil time: a calendar date plus minutes since local
// midnight, both in the adapter's timezone.
type Moment struct {
	DateKey string
	Minutes types.MinuteOfDay
}

// Adapter converts between instants and civil moments in one fixed IANA zone.
type Adapter struct {
	loc *time.Location
}

// New loads the named IANA timezone and returns an adapter bound to it.
func New(name string) (*Adapter, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("civiltime: load timezone %q: %w", name, err)
	}
	return &Adapter{loc: loc}, nil
}

// Location returns the adapter's timezone.
func (a *Adapter) Location() *time.Location {
	return a.loc
}

// ToCivil converts an instant to the civil moment observed on a wall clock in
// the adapter's timezone.
func (a *Adapter) ToCivil(t time.Time) Moment {
	lt := t.In(a.loc)
	return Moment{
		DateKey: lt.Format(DateFormat),
		Minutes: types.MinuteOfDay(lt.Hour()*60 + lt.Minute()),
	}
}

// ToInstant converts a civil moment back to an instant.
//
// The conversion starts from the civil fields interpreted as UTC and corrects
// the guess by the zone offset in force at the guessed instant, repeating
// until the offset is self-consistent. Two passes converge everywhere except
// inside a transition window:
//   - a time inside a spring-forward gap never round-trips and yields
//     ErrNonexistentTime;
//   - a time repeated by a fall-back transition resolves to its first
//     (earlier-offset) occurrence.
func (a *Adapter) ToInstant(dateKey string, minutes types.MinuteOfDay) (time.Time, error) {
	if !minutes.Valid() {
		return time.Time{}, fmt.Errorf("%w: %d", ErrInvalidMinutes, minutes)
	}

	day, err := time.ParseInLocation(DateFormat, dateKey, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, dateKey)
	}

	utcGuess := day.Add(time.Duration(minutes) * time.Minute)
	guess := utcGuess
	for i := 0; i < 3; i++ {
		_, offset := guess.In(a.loc).Zone()
		next := utcGuess.Add(-time.Duration(offset) * time.Second)
		if next.Equal(guess) {
			break
		}
		guess = next
	}

	if got := a.ToCivil(guess); got.DateKey != dateKey || got.Minutes != minutes {
		return time.Time{}, fmt.Errorf("%w: %s %s", ErrNonexistentTime, dateKey, minutes)
	}

	return guess, nil
}

// Today returns the date key of the given instant in the adapter's timezone.
func (a *Adapter) Today(now time.Time) string {
	return a.ToCivil(now).DateKey
}

// AddDays shifts a date key by n calendar days. This is pure calendar
// arithmetic; it never adds 24-hour durations to instants.
func AddDays(dateKey string, n int) (string, error) {
	day, err := time.ParseInLocation(DateFormat, dateKey, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, dateKey)
	}
	return day.AddDate(0, 0, n).Format(DateFormat), nil
}

// Weekday returns the day of week for a date key. Weekday is a property of
// the calendar date and does not depend on any timezone.
func Weekday(dateKey string) (time.Weekday, error) {
	day, err := time.ParseInLocation(DateFormat, dateKey, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDate, dateKey)
	}
	return day.Weekday(), nil
}

// ValidDateKey reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDateKey(s string) bool {
	_, err := time.ParseInLocation(DateFormat, s, time.UTC)
	return err == nil
}
