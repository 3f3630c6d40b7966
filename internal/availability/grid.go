package availability

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// GenerateGrid produces the candidate slot start times for one day: starts
// at open, advances by a fixed step, and keeps every start whose service of
// the given duration still finishes by close.
//
// The duration is an input rather than part of the grid because it varies
// per service and per staff override; the step is fixed per endpoint flavor.
func GenerateGrid(open, close types.MinuteOfDay, stepMinutes, durationMinutes int) []types.MinuteOfDay {
	if stepMinutes <= 0 || durationMinutes <= 0 || open >= close {
		return nil
	}

	var grid []types.MinuteOfDay
	for start := open; start.Add(durationMinutes) <= close; start = start.Add(stepMinutes) {
		grid = append(grid, start)
	}
	return grid
}
