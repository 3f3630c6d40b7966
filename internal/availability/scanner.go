package availability

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/civiltime"
)

// ScanRange resolves every day in [startKey, startKey+days) against the same
// snapshot and returns a map of date key to admitted slots. Days with no
// slots are skipped in the output but never terminate the scan: later days
// are always evaluated.
//
// The snapshot is fetched once by the caller; the scan itself is pure CPU
// work and issues no I/O per day.
func ScanRange(snap *Snapshot, startKey string, days int, clock Clock, opts Options) (map[string][]domain.AvailableSlot, error) {
	if days <= 0 {
		return nil, fmt.Errorf("availability: scan range must be positive, got %d", days)
	}

	result := make(map[string][]domain.AvailableSlot)
	for i := 0; i < days; i++ {
		dateKey, err := civiltime.AddDays(startKey, i)
		if err != nil {
			return nil, fmt.Errorf("availability: scan day %d: %w", i, err)
		}
		weekday, err := civiltime.Weekday(dateKey)
		if err != nil {
			return nil, fmt.Errorf("availability: scan day %d: %w", i, err)
		}

		slots := ResolveDay(snap, dateKey, weekday, clock, opts)
		if len(slots) > 0 {
			result[dateKey] = slots
		}
	}
	return result, nil
}

// ScanFirst walks up to horizon days from startKey and returns the earliest
// admitted slot of the first day that has one. A fully booked horizon is a
// normal outcome, not an error: found is false and the caller reports
// "nothing available".
func ScanFirst(snap *Snapshot, startKey string, horizon int, clock Clock, opts Options) (FirstSlot, bool, error) {
	if horizon <= 0 || horizon > domain.FirstAvailableHorizonDays {
		horizon = domain.FirstAvailableHorizonDays
	}

	for i := 0; i < horizon; i++ {
		dateKey, err := civiltime.AddDays(startKey, i)
		if err != nil {
			return FirstSlot{}, false, fmt.Errorf("availability: first-available day %d: %w", i, err)
		}
		weekday, err := civiltime.Weekday(dateKey)
		if err != nil {
			return FirstSlot{}, false, fmt.Errorf("availability: first-available day %d: %w", i, err)
		}

		slots := ResolveDay(snap, dateKey, weekday, clock, opts)
		if len(slots) > 0 {
			return FirstSlot{DateKey: dateKey, Slot: slots[0]}, true, nil
		}
	}
	return FirstSlot{}, false, nil
}
