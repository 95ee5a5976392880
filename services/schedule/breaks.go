package schedule

import (
	"easyappointment/models"

	"easyappointment/utils"
)

const minutesPerDay = 24 * 60

// ValidateBreaks rejects malformed break windows: bounds outside the day,
// empty or inverted windows, or windows out of order by start time. It runs
// at provider creation so bad breaks fail the request, and again in the
// generator as its own precondition.
func ValidateBreaks(breaks []models.BreakWindow) error {
	prevStart := -1
	for i, b := range breaks {
		if b.Start < 0 || b.End > minutesPerDay {
			return utils.Validationf("break window %d lies outside the day: [%d, %d)", i+1, b.Start, b.End)
		}
		if b.Start >= b.End {
			return utils.Validationf("break window %d must start before it ends: [%d, %d)", i+1, b.Start, b.End)
		}
		if b.Start < prevStart {
			return utils.Validationf("break windows must be ordered by start time")
		}
		prevStart = b.Start
	}
	return nil
}

// overlapsBreak reports whether the half-open candidate [start, end)
// intersects any half-open break window. Any partial intersection counts;
// a candidate ending exactly at a break's start, or starting exactly at a
// break's end, does not.
func overlapsBreak(start, end int, breaks []models.BreakWindow) bool {
	for _, b := range breaks {
		if start < b.End && b.Start < end {
			return true
		}
	}
	return false
}

// breakEndContaining returns the end of the break window containing the
// given minute, if any.
func breakEndContaining(minute int, breaks []models.BreakWindow) (int, bool) {
	for _, b := range breaks {
		if minute >= b.Start && minute < b.End {
			return b.End, true
		}
	}
	return 0, false
}
