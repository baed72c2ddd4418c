package scheduling

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/timetypes"
)

func seedBookable(t *testing.T) (*memStore, *BookingValidator, BookRequest) {
	t.Helper()
	store := newMemStore()
	tutorID := store.addTutor()
	studentID := store.addStudent()
	store.addSlot(models.AvailabilitySlot{
		TutorID:   tutorID,
		Date:      timetypes.DateOnlyOf(2024, time.January, 1),
		StartTime: tod(t, "09:00"),
		EndTime:   tod(t, "10:00"),
		TimeZone:  "UTC",
	})

	validator := NewBookingValidator(store, store, store)
	req := BookRequest{
		StudentID: studentID,
		TutorID:   tutorID,
		Date:      "2024-01-01",
		StartTime: "09:00",
		EndTime:   "10:00",
		TimeZone:  "UTC",
	}
	return store, validator, req
}

func TestBookFlipsSlotAndRejectsRepeat(t *testing.T) {
	store, validator, req := seedBookable(t)
	fixed := time.Date(2023, time.December, 20, 10, 0, 0, 0, time.UTC)
	validator.now = func() time.Time { return fixed }

	booking, err := validator.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if booking.Status != "confirmed" {
		t.Fatalf("status: got %s", booking.Status)
	}
	if !booking.BookingTime.Equal(fixed) {
		t.Fatalf("booking time: got %s", booking.BookingTime)
	}

	slot, err := store.FindAvailabilityExact(context.Background(), req.TutorID,
		timetypes.DateOnlyOf(2024, time.January, 1), tod(t, "09:00"), tod(t, "10:00"), true)
	if err != nil || slot == nil {
		t.Fatalf("slot was not marked booked (slot=%v, err=%v)", slot, err)
	}

	_, err = validator.Book(context.Background(), req)
	if !errors.Is(err, ErrSlotAlreadyBooked) {
		t.Fatalf("repeat booking: expected ErrSlotAlreadyBooked, got %v", err)
	}
}

func TestBookTruncatesSecondsBeforeMatching(t *testing.T) {
	_, validator, req := seedBookable(t)
	req.StartTime = "09:00:45"
	req.EndTime = "10:00:30"

	booking, err := validator.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if booking.StartTime.String() != "09:00:00" || booking.EndTime.String() != "10:00:00" {
		t.Fatalf("stored times %s - %s, want minute precision", booking.StartTime, booking.EndTime)
	}
}

func TestBookRequiresExactSlotMatch(t *testing.T) {
	_, validator, req := seedBookable(t)
	// Inside the published window but not aligned with its boundaries.
	req.StartTime = "09:15"
	req.EndTime = "09:45"

	_, err := validator.Book(context.Background(), req)
	if !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
}

func TestBookUnknownEntities(t *testing.T) {
	_, validator, req := seedBookable(t)

	bad := req
	bad.StudentID = uuid.New()
	_, err := validator.Book(context.Background(), bad)
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Entity != "student" {
		t.Fatalf("expected student NotFoundError, got %v", err)
	}

	bad = req
	bad.TutorID = uuid.New()
	_, err = validator.Book(context.Background(), bad)
	if !errors.As(err, &notFound) || notFound.Entity != "tutor" {
		t.Fatalf("expected tutor NotFoundError, got %v", err)
	}
}

func TestBookConcurrentRequestsBookOnce(t *testing.T) {
	store, validator, req := seedBookable(t)

	const attempts = 8
	var wg sync.WaitGroup
	results := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = validator.Book(context.Background(), req)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotUnavailable), errors.Is(err, ErrSlotAlreadyBooked):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Fatalf("expected exactly one successful booking, got %d", successes)
	}

	store.mu.Lock()
	recorded := len(store.bookings)
	store.mu.Unlock()
	if recorded != 1 {
		t.Fatalf("expected 1 recorded booking, got %d", recorded)
	}
}
