package scheduling

import (
	"testing"
	"time"

	"github.com/jakendu/tutorbook/timetypes"
)

func TestExpandWeekly(t *testing.T) {
	base := timetypes.DateOnlyOf(2024, time.January, 1)
	dates := RecurrenceSpec{Mode: RecurrenceWeekly, Occurrences: 3}.Expand(base)

	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	want := []string{"2024-01-01", "2024-01-08", "2024-01-15"}
	for i, d := range dates {
		if d.String() != want[i] {
			t.Fatalf("occurrence %d: got %s, want %s", i, d, want[i])
		}
	}
}

func TestExpandDaily(t *testing.T) {
	base := timetypes.DateOnlyOf(2024, time.January, 30)
	dates := RecurrenceSpec{Mode: RecurrenceDaily, Occurrences: 3}.Expand(base)

	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	// Stepping must roll over the month boundary.
	if dates[2].String() != "2024-02-01" {
		t.Fatalf("third occurrence: got %s, want 2024-02-01", dates[2])
	}
}

func TestExpandNoneIgnoresCount(t *testing.T) {
	base := timetypes.DateOnlyOf(2024, time.March, 5)
	for _, count := range []int{1, 4, 50} {
		dates := RecurrenceSpec{Mode: RecurrenceNone, Occurrences: count}.Expand(base)
		if len(dates) != 1 {
			t.Fatalf("count %d: expected single date, got %d", count, len(dates))
		}
		if !dates[0].Equal(base) {
			t.Fatalf("count %d: got %s, want %s", count, dates[0], base)
		}
	}
}

func TestExpandDefaultsCountToOne(t *testing.T) {
	base := timetypes.DateOnlyOf(2024, time.March, 5)
	dates := RecurrenceSpec{Mode: RecurrenceDaily, Occurrences: 0}.Expand(base)
	if len(dates) != 1 || !dates[0].Equal(base) {
		t.Fatalf("expected just the base date, got %v", dates)
	}
}
