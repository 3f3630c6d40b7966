package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// AvailableSlot is a candidate start time that survived every exclusion
// filter for its day. Slots are computed per request and never persisted.
type AvailableSlot struct {
	StartMinutes    types.MinuteOfDay
	DurationMinutes int
}

// EndMinutes returns the minute at which the slot's service would finish.
func (s AvailableSlot) EndMinutes() types.MinuteOfDay {
	return s.StartMinutes.Add(s.DurationMinutes)
}

// Label returns the 12-hour display label for the slot's start time.
// The label is for presentation only; StartMinutes stays the source of truth.
func (s AvailableSlot) Label() string {
	return s.StartMinutes.Clock12()
}
