package timetypes

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

const layoutDate = "2006-01-02"

// DateOnly is a calendar date with no time and no zone attached.
type DateOnly struct {
	Date time.Time
}

func ParseDateOnly(str string) (DateOnly, error) {
	parsed, err := time.Parse(layoutDate, str)
	if err != nil {
		return DateOnly{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", str)
	}
	return DateOnly{Date: parsed}, nil
}

func DateOnlyOf(year int, month time.Month, day int) DateOnly {
	return DateOnly{Date: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today extracts the calendar date of the given instant in its own location.
func Today(now time.Time) DateOnly {
	return DateOnlyOf(now.Date())
}

// AddDays returns the date shifted by the given number of days.
func (d DateOnly) AddDays(days int) DateOnly {
	return DateOnly{Date: d.Date.AddDate(0, 0, days)}
}

func (d DateOnly) Equal(other DateOnly) bool {
	return d.Date.Equal(other.Date)
}

func (d DateOnly) Before(other DateOnly) bool {
	return d.Date.Before(other.Date)
}

// At combines the date with a time of day in the given location.
func (d DateOnly) At(t TimeOfDay, loc *time.Location) time.Time {
	hour, minute, second := t.Clock()
	return time.Date(d.Date.Year(), d.Date.Month(), d.Date.Day(), hour, minute, second, 0, loc)
}

func (d DateOnly) IsZero() bool {
	return d.Date.IsZero()
}

func (d DateOnly) String() string {
	return d.Date.Format(layoutDate)
}

func (d *DateOnly) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseDateOnly(str)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Date.Format(layoutDate))
}

func (d DateOnly) Value() (driver.Value, error) {
	return d.Date.Format(layoutDate), nil
}

func (d *DateOnly) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = DateOnly{}
		return nil
	case time.Time:
		*d = DateOnlyOf(v.Date())
		return nil
	case string:
		parsed, err := ParseDateOnly(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseDateOnly(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DateOnly", src)
	}
}
