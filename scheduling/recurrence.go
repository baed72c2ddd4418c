package scheduling

import "github.com/jakendu/tutorbook/timetypes"

type RecurrenceMode string

const (
	RecurrenceNone   RecurrenceMode = "none"
	RecurrenceDaily  RecurrenceMode = "daily"
	RecurrenceWeekly RecurrenceMode = "weekly"
)

// RecurrenceSpec describes how a base date expands into a series of
// occurrences. It lives only for the duration of a request.
type RecurrenceSpec struct {
	Mode        RecurrenceMode
	Occurrences int
}

// Expand produces the ordered calendar dates the spec generates from base.
// Only daily and weekly advance the date; any other mode yields the base
// date exactly once regardless of the requested occurrence count.
func (s RecurrenceSpec) Expand(base timetypes.DateOnly) []timetypes.DateOnly {
	count := s.Occurrences
	if count < 1 {
		count = 1
	}

	switch s.Mode {
	case RecurrenceDaily:
		dates := make([]timetypes.DateOnly, 0, count)
		for i := 0; i < count; i++ {
			dates = append(dates, base.AddDays(i))
		}
		return dates
	case RecurrenceWeekly:
		dates := make([]timetypes.DateOnly, 0, count)
		for i := 0; i < count; i++ {
			dates = append(dates, base.AddDays(7*i))
		}
		return dates
	default:
		return []timetypes.DateOnly{base}
	}
}
