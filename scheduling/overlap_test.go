package scheduling

import (
	"testing"

	"github.com/jakendu/tutorbook/timetypes"
)

func tod(t *testing.T, s string) timetypes.TimeOfDay {
	t.Helper()
	parsed, err := timetypes.ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return parsed
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"touching endpoints", "09:00", "10:00", "10:00", "11:00", false},
		{"disjoint", "09:00", "10:00", "11:00", "12:00", false},
		{"partial overlap", "09:00", "10:00", "09:30", "10:30", true},
		{"contained", "09:00", "12:00", "10:00", "11:00", true},
		{"identical", "09:00", "10:00", "09:00", "10:00", true},
		{"one minute shared", "09:00", "10:01", "10:00", "11:00", true},
	}
	for _, tc := range cases {
		got := Overlaps(tod(t, tc.aStart), tod(t, tc.aEnd), tod(t, tc.bStart), tod(t, tc.bEnd))
		if got != tc.want {
			t.Fatalf("%s: Overlaps(%s-%s, %s-%s) = %v, want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
		// The predicate must not care about argument order.
		flipped := Overlaps(tod(t, tc.bStart), tod(t, tc.bEnd), tod(t, tc.aStart), tod(t, tc.aEnd))
		if flipped != got {
			t.Fatalf("%s: overlap check is not symmetric", tc.name)
		}
	}
}
