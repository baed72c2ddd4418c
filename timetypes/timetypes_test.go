package timetypes

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	if err != nil {
		t.Fatalf("parse HH:MM: %v", err)
	}
	if got.String() != "09:30:00" {
		t.Fatalf("HH:MM input must default seconds to :00, got %s", got)
	}

	got, err = ParseTimeOfDay("09:30:15")
	if err != nil {
		t.Fatalf("parse HH:MM:SS: %v", err)
	}
	if got.String() != "09:30:15" {
		t.Fatalf("got %s", got)
	}

	if _, err := ParseTimeOfDay("930"); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestTruncateToMinute(t *testing.T) {
	got, err := ParseTimeOfDay("09:30:59")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	truncated := got.TruncateToMinute()
	if truncated.String() != "09:30:00" {
		t.Fatalf("got %s", truncated)
	}
	if !truncated.Equal(TimeOfDayFromClock(9, 30, 0)) {
		t.Fatal("truncated value must compare equal to the clock constructor")
	}
}

func TestDateOnlyAt(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	d := DateOnlyOf(2024, time.January, 15)
	instant := d.At(TimeOfDayFromClock(9, 0, 0), loc)

	if instant.UTC().Hour() != 14 {
		t.Fatalf("09:00 New York in January must be 14:00 UTC, got %s", instant.UTC())
	}
}

func TestDateOnlyAddDaysRollsOver(t *testing.T) {
	d := DateOnlyOf(2024, time.February, 28)
	if next := d.AddDays(1); next.String() != "2024-02-29" {
		t.Fatalf("2024 is a leap year, got %s", next)
	}
	if week := d.AddDays(7); week.String() != "2024-03-06" {
		t.Fatalf("got %s", week)
	}
}
