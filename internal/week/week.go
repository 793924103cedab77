// Package week computes the poll calendar: week identifiers, week window
// bounds and the poll phase, all from one local calendar-day rule so the
// three can never disagree about which week an instant belongs to.
//
// Rules (local time of the given instant):
//   - Week runs Monday 00:00:00 to next Monday 00:00:00.
//   - Voting is open all Friday.
//   - Results are visible Saturday and Sunday.
//   - Monday through Thursday the poll is not available.
package week

import (
	"fmt"
	"time"

	"hornethive-server/internal/model"
)

// ID returns the week identifier for t, formatted "YYYY-Www" using ISO-8601
// week numbering. The ISO year is used rather than the calendar year so the
// identifier stays constant across a Mon–Sun span straddling January 1.
func ID(t time.Time) string {
	year, wk := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, wk)
}

// Bounds returns the half-open [start, end) window of the week containing t:
// Monday 00:00 local time through the following Monday 00:00.
func Bounds(t time.Time) (start, end time.Time) {
	days := int(t.Weekday()) - int(time.Monday)
	if days < 0 {
		days += 7 // Sunday
	}
	y, m, d := t.AddDate(0, 0, -days).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 7)
}

// Contains reports whether instant falls inside the week window of t.
func Contains(t, instant time.Time) bool {
	start, end := Bounds(t)
	return !instant.Before(start) && instant.Before(end)
}

// PhaseAt classifies t by local day of week.
func PhaseAt(t time.Time) string {
	switch t.Weekday() {
	case time.Friday:
		return model.PhaseVotingOpen
	case time.Saturday, time.Sunday:
		return model.PhaseResultsVisible
	default:
		return model.PhaseNotAvailable
	}
}

// IsCleanupDay reports whether t is the first day of the week, when stale
// poll records from the previous week are swept.
func IsCleanupDay(t time.Time) bool {
	return t.Weekday() == time.Monday
}
