package domain

import "github.com/m04kA/MYB-BookingService/pkg/types"

// FreeSlot represents a candidate time interval of a requested duration
// within business hours. Slots are computed on demand and never stored.
type FreeSlot struct {
	StartMinute int
	EndMinute   int
	Time        types.TimeString
}

// BookedRange is the occupied interval implied by an active booking,
// in minutes from midnight. Half-open: [StartMinute, EndMinute).
type BookedRange struct {
	StartMinute int
	EndMinute   int
}

// Overlaps returns true if the range overlaps [start, end).
// Ranges that only touch at an endpoint do not overlap.
func (r BookedRange) Overlaps(start, end int) bool {
	return types.Overlaps(r.StartMinute, r.EndMinute, start, end)
}

// GenerateSlots enumerates candidate slots within business hours.
// Starting at hours.OpenMin, it steps by stepMinutes and emits
// [t, t+durationMinutes) while the slot still fits before hours.CloseMin.
// The sequence is finite, deterministic and ordered by start time.
// A non-positive duration or step yields no slots.
func GenerateSlots(hours BusinessHours, durationMinutes, stepMinutes int) []FreeSlot {
	slots := make([]FreeSlot, 0)

	if durationMinutes <= 0 || stepMinutes <= 0 {
		return slots
	}

	for t := hours.OpenMin; t+durationMinutes <= hours.CloseMin; t += stepMinutes {
		ts, err := types.NewTimeStringFromMinutes(t)
		if err != nil {
			break
		}
		slots = append(slots, FreeSlot{
			StartMinute: t,
			EndMinute:   t + durationMinutes,
			Time:        ts,
		})
	}

	return slots
}
