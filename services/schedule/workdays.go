package schedule

import "time"

// NextWorkingDay returns the next date on or after from that falls on
// weekday. A from already on weekday is returned unchanged.
func NextWorkingDay(from time.Time, weekday time.Weekday) time.Time {
	if from.Weekday() == weekday {
		return from
	}
	daysToAdd := (int(weekday) - int(from.Weekday()) + 7) % 7
	if daysToAdd == 0 {
		daysToAdd = 7
	}
	return from.AddDate(0, 0, daysToAdd)
}

// weekdayForIndex maps a working-day flag index (0 = Monday .. 6 = Sunday)
// to its time.Weekday.
func weekdayForIndex(i int) time.Weekday {
	return time.Weekday((i + 1) % 7)
}
