package scheduling

import "github.com/jakendu/tutorbook/timetypes"

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) on the same date share any point in time. Intervals that
// exactly touch at an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd timetypes.TimeOfDay) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
