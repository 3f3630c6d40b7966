package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// MinuteOfDay is a time of day expressed as minutes since local midnight.
// The integer value is the source of truth everywhere in the system;
// string representations ("HH:MM", 12-hour labels) are derived and one-way.
type MinuteOfDay int

// ParseMinuteOfDay parses a "HH:MM" string (24-hour clock).
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", s, err)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %v", s, err)
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}

	return MinuteOfDay(hours*60 + mins), nil
}

// Valid reports whether the value lies within a single civil day.
func (m MinuteOfDay) Valid() bool {
	return m >= 0 && m < minutesPerDay
}

// Hour returns the hour component (0-23).
func (m MinuteOfDay) Hour() int {
	return int(m) / 60
}

// Minute returns the minute component (0-59).
func (m MinuteOfDay) Minute() int {
	return int(m) % 60
}

// String formats the value as "HH:MM" (24-hour clock).
func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

// Clock12 formats the value as a 12-hour display label, e.g. "1:30 PM".
// The label is lossy; callers must keep the integer value for comparisons.
func (m MinuteOfDay) Clock12() string {
	hour := m.Hour()
	suffix := "AM"
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		suffix = "PM"
	case hour > 12:
		hour -= 12
		suffix = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, m.Minute(), suffix)
}

// Add returns the value shifted by the given number of minutes.
// The result may exceed the day (e.g. an interval end at 24:00); callers
// compare such values, they never store them as a start time.
func (m MinuteOfDay) Add(minutes int) MinuteOfDay {
	return m + MinuteOfDay(minutes)
}

// Scan implements sql.Scanner (stored as an integer column).
func (m *MinuteOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		*m = MinuteOfDay(v)
		return nil
	case nil:
		*m = 0
		return nil
	default:
		return fmt.Errorf("cannot scan %T into MinuteOfDay", src)
	}
}

// Value implements driver.Valuer.
func (m MinuteOfDay) Value() (driver.Value, error) {
	return int64(m), nil
}
