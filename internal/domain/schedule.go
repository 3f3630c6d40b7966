package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// DayWindow is the open/close interval for one weekday.
// Business hours and staff hours share this shape.
type DayWindow struct {
	Weekday time.Weekday
	Open    types.MinuteOfDay
	Close   types.MinuteOfDay
	Closed  bool
}

// IsValid reports whether the window satisfies its invariant: an open day
// must have Open strictly before Close.
func (w DayWindow) IsValid() bool {
	if w.Closed {
		return true
	}
	return w.Open.Valid() && w.Close > w.Open && w.Close <= types.MinuteOfDay(24*60)
}

// WeekSchedule holds one window per weekday, indexed by time.Weekday.
type WeekSchedule [7]DayWindow

// Day returns the window for the given weekday.
func (s WeekSchedule) Day(wd time.Weekday) DayWindow {
	return s[wd]
}

// StaffSchedule is a staff member's weekly hours plus explicit weekend-off
// flags. A staff member with no schedule row at all falls back to business
// hours; the flags only apply when a schedule exists.
type StaffSchedule struct {
	StaffID     int64
	Hours       WeekSchedule
	SaturdayOff bool
	SundayOff   bool
}

// IsOffDay reports whether the weekday is excluded by a weekend-off flag.
func (s *StaffSchedule) IsOffDay(wd time.Weekday) bool {
	return (wd == time.Saturday && s.SaturdayOff) || (wd == time.Sunday && s.SundayOff)
}

// TimeOffPeriod is a full-day absence range, inclusive on both ends.
type TimeOffPeriod struct {
	StaffID   int64
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

// Contains reports whether the date key falls inside the period.
// YYYY-MM-DD keys compare correctly as strings.
func (p TimeOffPeriod) Contains(dateKey string) bool {
	return dateKey >= p.StartDate && dateKey <= p.EndDate
}

// TimeBlock is an interval during which no slot may start.
// A block is either recurring (Weekdays set, Date nil) or dated (Date set).
// The interval is half-open: a slot starting exactly at End is allowed.
type TimeBlock struct {
	StaffID  int64
	Weekdays []time.Weekday // recurring blocks; empty when dated
	Date     *string        // dated blocks; nil when recurring
	Start    types.MinuteOfDay
	End      types.MinuteOfDay
}

// AppliesTo reports whether the block is in force on the given day.
func (b TimeBlock) AppliesTo(dateKey string, wd time.Weekday) bool {
	if b.Date != nil {
		return *b.Date == dateKey
	}
	for _, blocked := range b.Weekdays {
		if blocked == wd {
			return true
		}
	}
	return false
}

// Covers reports whether a slot starting at the given minute falls inside
// the block's half-open interval [Start, End).
func (b TimeBlock) Covers(start types.MinuteOfDay) bool {
	return start >= b.Start && start < b.End
}
