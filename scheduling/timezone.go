package scheduling

import (
	"time"

	"github.com/jakendu/tutorbook/timetypes"
)

// Converter re-expresses wall-clock times between IANA timezones. The clock
// is injectable so callers anchoring to "today" stay testable.
type Converter struct {
	now func() time.Time
}

func NewConverter() *Converter {
	return &Converter{now: time.Now}
}

// Convert converts a start/end pair from fromZone to toZone anchored to
// today's date. Offsets depend on the anchor date, so converting the same
// pair on different days can give different results around DST transitions.
func (c *Converter) Convert(start, end, fromZone, toZone string) (timetypes.TimeOfDay, timetypes.TimeOfDay, error) {
	return c.ConvertOn(timetypes.Today(c.now()), start, end, fromZone, toZone)
}

// ConvertOn converts a start/end pair from fromZone to toZone anchored to the
// given reference date. The date component of the converted instants is
// discarded; only the wall-clock values in toZone are returned.
func (c *Converter) ConvertOn(date timetypes.DateOnly, start, end, fromZone, toZone string) (timetypes.TimeOfDay, timetypes.TimeOfDay, error) {
	var zero timetypes.TimeOfDay

	startTime, err := timetypes.ParseTimeOfDay(start)
	if err != nil {
		return zero, zero, &InvalidTimeFormatError{Value: start, Want: "HH:MM or HH:MM:SS"}
	}
	endTime, err := timetypes.ParseTimeOfDay(end)
	if err != nil {
		return zero, zero, &InvalidTimeFormatError{Value: end, Want: "HH:MM or HH:MM:SS"}
	}

	from, err := time.LoadLocation(fromZone)
	if err != nil {
		return zero, zero, &InvalidTimeZoneError{Zone: fromZone}
	}
	to, err := time.LoadLocation(toZone)
	if err != nil {
		return zero, zero, &InvalidTimeZoneError{Zone: toZone}
	}

	convert := func(t timetypes.TimeOfDay) timetypes.TimeOfDay {
		instant := date.At(t, from).In(to)
		return timetypes.TimeOfDayFromClock(instant.Clock())
	}
	return convert(startTime), convert(endTime), nil
}
