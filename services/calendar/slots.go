// Package calendar holds the pure slot and month-grid math. No I/O, no state.
package calendar

import (
	"medibook/utils"
)

// GenerateSlots emits successive "HH:MM" start times from `from`, advancing by
// durationMinutes while strictly less than `to`. A non-positive duration or a
// window where from >= to yields an empty list rather than an error.
func GenerateSlots(from, to string, durationMinutes int) []string {
	if durationMinutes <= 0 {
		return nil
	}
	start, err := utils.ParseHHMM(from)
	if err != nil {
		return nil
	}
	end, err := utils.ParseHHMM(to)
	if err != nil {
		return nil
	}
	if start >= end {
		return nil
	}

	var slots []string
	for t := start; t < end; t += durationMinutes {
		slots = append(slots, utils.FormatHHMM(t))
	}
	return slots
}
