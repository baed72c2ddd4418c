package timetypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const (
	layoutHM  = "15:04"
	layoutHMS = "15:04:05"
)

// TimeOfDay is a wall-clock time within a day, with no date and no zone attached.
type TimeOfDay struct {
	Time time.Time
}

// ParseTimeOfDay accepts "HH:MM:SS" or "HH:MM"; minutes-only input gets :00 seconds.
func ParseTimeOfDay(str string) (TimeOfDay, error) {
	parsed, err := time.Parse(layoutHMS, str)
	if err != nil {
		parsed, err = time.Parse(layoutHM, str)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q: expected HH:MM or HH:MM:SS", str)
		}
	}
	return TimeOfDay{Time: parsed}, nil
}

func TimeOfDayFromClock(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Time: time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC)}
}

func (t TimeOfDay) Clock() (hour, minute, second int) {
	return t.Time.Clock()
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Time.Before(other.Time)
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.Time.After(other.Time)
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.Time.Equal(other.Time)
}

// TruncateToMinute drops the seconds component.
func (t TimeOfDay) TruncateToMinute() TimeOfDay {
	hour, minute, _ := t.Time.Clock()
	return TimeOfDayFromClock(hour, minute, 0)
}

func (t TimeOfDay) String() string {
	return t.Time.Format(layoutHMS)
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(str)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(layoutHMS))
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.Time.Format(layoutHMS), nil
}

func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = TimeOfDay{}
		return nil
	case time.Time:
		*t = TimeOfDayFromClock(v.Clock())
		return nil
	case string:
		parsed, err := ParseTimeOfDay(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := ParseTimeOfDay(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}
