package availability

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// ResolveDay computes the admitted slots for a single day, ascending by
// start time. It returns nil for days with no bookable slots.
//
// The admission pipeline, in order:
//  1. business hours closed for the weekday -> no slots;
//  2. staff closed for the weekday, weekend-off flag, or full-day time off
//     -> no slots;
//  3. effective window = business window intersected with staff window;
//  4. on the literal current day the window start is floored to
//     now + buffer so customers cannot book into the immediate past;
//  5. grid candidates are admitted unless a time block covers them or an
//     active booking overlaps them.
func ResolveDay(snap *Snapshot, dateKey string, weekday time.Weekday, clock Clock, opts Options) []domain.AvailableSlot {
	open, close, ok := effectiveWindow(snap, dateKey, weekday)
	if !ok {
		return nil
	}

	// The today floor applies only to the current day, never to future days
	// even when partially elapsed. The floored start is re-aligned to the
	// day's grid so today's slots line up with every other day's.
	gridOrigin := open
	if dateKey == clock.TodayKey {
		floor := clock.NowMinutes.Add(opts.BufferMinutes)
		if floor > open {
			open = alignUp(floor, gridOrigin, opts.StepMinutes)
		}
	}

	dayBookings := snap.bookingsOn(dateKey)

	var admitted []domain.AvailableSlot
	for _, start := range GenerateGrid(open, close, opts.StepMinutes, snap.DurationMinutes) {
		if blockedAt(snap.Blocks, dateKey, weekday, start) {
			continue
		}
		if overlapsActiveBooking(dayBookings, start, snap.DurationMinutes) {
			continue
		}
		admitted = append(admitted, domain.AvailableSlot{
			StartMinutes:    start,
			DurationMinutes: snap.DurationMinutes,
		})
	}
	return admitted
}

// AdmitSlot re-runs the single-day pipeline for exactly one candidate start.
// Used by the booking commit protocol to re-validate a chosen slot against a
// freshly fetched snapshot.
func AdmitSlot(snap *Snapshot, dateKey string, weekday time.Weekday, start types.MinuteOfDay, clock Clock, opts Options) bool {
	open, close, ok := effectiveWindow(snap, dateKey, weekday)
	if !ok {
		return false
	}

	if dateKey == clock.TodayKey {
		floor := clock.NowMinutes.Add(opts.BufferMinutes)
		if floor > open {
			open = floor
		}
	}

	if start < open || start.Add(snap.DurationMinutes) > close {
		return false
	}
	if blockedAt(snap.Blocks, dateKey, weekday, start) {
		return false
	}
	return !overlapsActiveBooking(snap.bookingsOn(dateKey), start, snap.DurationMinutes)
}

// effectiveWindow intersects business hours with staff hours for the day and
// applies full-day staff exclusions. ok is false when the day yields nothing.
func effectiveWindow(snap *Snapshot, dateKey string, weekday time.Weekday) (open, close types.MinuteOfDay, ok bool) {
	business := snap.Business.Day(weekday)
	if business.Closed {
		return 0, 0, false
	}

	open, close = business.Open, business.Close

	if snap.Staff != nil {
		if snap.Staff.IsOffDay(weekday) {
			return 0, 0, false
		}

		staffDay := snap.Staff.Hours.Day(weekday)
		if staffDay.Closed {
			return 0, 0, false
		}
		if staffDay.Open > open {
			open = staffDay.Open
		}
		if staffDay.Close < close {
			close = staffDay.Close
		}

		for _, period := range snap.TimeOff {
			if period.Contains(dateKey) {
				return 0, 0, false
			}
		}
	}

	if open >= close {
		return 0, 0, false
	}
	return open, close, true
}

// blockedAt reports whether any time block in force on the day covers the
// candidate start. Block intervals are half-open: a slot starting exactly at
// a block's end is allowed.
func blockedAt(blocks []domain.TimeBlock, dateKey string, weekday time.Weekday, start types.MinuteOfDay) bool {
	for _, block := range blocks {
		if block.AppliesTo(dateKey, weekday) && block.Covers(start) {
			return true
		}
	}
	return false
}

// overlapsActiveBooking applies the half-open interval overlap test against
// every non-cancelled booking of the day.
func overlapsActiveBooking(bookings []domain.Booking, start types.MinuteOfDay, durationMinutes int) bool {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(start, durationMinutes) {
			return true
		}
	}
	return false
}

// alignUp rounds floor up to the next grid position, counting steps from the
// day's opening time so the floored grid stays aligned with the normal one.
func alignUp(floor, gridOrigin types.MinuteOfDay, stepMinutes int) types.MinuteOfDay {
	if stepMinutes <= 0 || floor <= gridOrigin {
		return floor
	}
	offset := int(floor - gridOrigin)
	if rem := offset % stepMinutes; rem != 0 {
		offset += stepMinutes - rem
	}
	return gridOrigin.Add(offset)
}
