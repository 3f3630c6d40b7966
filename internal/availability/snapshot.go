// Package availability computes bookable time slots from a constraint
// snapshot. Everything here is pure arithmetic over shop-local civil time:
// the snapshot is fetched once per request by the constraints gateway, and
// no function in this package performs I/O or consults a timezone.
package availability

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Snapshot is the full constraint set for one availability request.
// It is immutable for the duration of the request: a multi-day scan over an
// unchanged snapshot is deterministic and yields identical output every time.
type Snapshot struct {
	// Business is the shop's weekly hours. Always present; availability is
	// not computable without it.
	Business domain.WeekSchedule

	// Staff is the staff member's schedule, or nil when no staff member is
	// selected or the staff member has no schedule of their own (in which
	// case business hours apply unmodified).
	Staff *domain.StaffSchedule

	// TimeOff are the staff member's full-day absences overlapping the
	// requested range. Empty when no staff member is selected.
	TimeOff []domain.TimeOffPeriod

	// Blocks are the staff member's recurring and dated time blocks.
	// Empty when no staff member is selected.
	Blocks []domain.TimeBlock

	// Bookings are the staff member's non-cancelled appointments inside the
	// requested range. Empty when no staff member is selected: without a
	// single bookable resource there is nothing to conflict with, and the
	// remote calendar remains the final gate at commit time.
	Bookings []domain.Booking

	// DurationMinutes is the effective service duration after applying any
	// per-staff override.
	DurationMinutes int
}

// Clock is the request's notion of "now" in shop-local civil time.
// The today floor applies only to the literal current day.
type Clock struct {
	TodayKey   string
	NowMinutes types.MinuteOfDay
}

// Options parameterize the resolver per endpoint flavor.
type Options struct {
	StepMinutes   int // slot grid step (15 or 30)
	BufferMinutes int // minimum notice before a slot on the current day
}

// FirstSlot is the result of a first-available search.
type FirstSlot struct {
	DateKey string
	Slot    domain.AvailableSlot
}

func (s *Snapshot) bookingsOn(dateKey string) []domain.Booking {
	var out []domain.Booking
	for _, b := range s.Bookings {
		if b.DateKey == dateKey {
			out = append(out, b)
		}
	}
	return out
}
