package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/timetypes"
)

type BookRequest struct {
	StudentID uuid.UUID
	TutorID   uuid.UUID
	Date      string
	StartTime string
	EndTime   string
	TimeZone  string
}

const bookingStatusConfirmed = "confirmed"

// BookingValidator checks a booking request against the directory, existing
// bookings, and published availability, then commits the slot flag flip and
// the booking insert as one transaction through the booking store.
type BookingValidator struct {
	entities     EntityStore
	availability AvailabilityStore
	bookings     BookingStore
	now          func() time.Time
}

func NewBookingValidator(entities EntityStore, availability AvailabilityStore, bookings BookingStore) *BookingValidator {
	return &BookingValidator{
		entities:     entities,
		availability: availability,
		bookings:     bookings,
		now:          time.Now,
	}
}

// Book validates and commits a booking. Times are truncated to minute
// precision before every comparison and before storage. The requested
// interval must align exactly with a published unbooked slot's boundaries;
// a request that merely falls inside a wider free window is rejected with
// ErrSlotUnavailable.
func (v *BookingValidator) Book(ctx context.Context, req BookRequest) (*models.Booking, error) {
	switch {
	case req.StudentID == uuid.Nil:
		return nil, &MissingFieldError{Field: "student_id"}
	case req.TutorID == uuid.Nil:
		return nil, &MissingFieldError{Field: "tutor_id"}
	case req.Date == "":
		return nil, &MissingFieldError{Field: "date"}
	case req.StartTime == "":
		return nil, &MissingFieldError{Field: "start_time"}
	case req.EndTime == "":
		return nil, &MissingFieldError{Field: "end_time"}
	case req.TimeZone == "":
		return nil, &MissingFieldError{Field: "time_zone"}
	}

	start, err := timetypes.ParseTimeOfDay(req.StartTime)
	if err != nil {
		return nil, &InvalidTimeFormatError{Value: req.StartTime, Want: "HH:MM or HH:MM:SS"}
	}
	end, err := timetypes.ParseTimeOfDay(req.EndTime)
	if err != nil {
		return nil, &InvalidTimeFormatError{Value: req.EndTime, Want: "HH:MM or HH:MM:SS"}
	}
	start = start.TruncateToMinute()
	end = end.TruncateToMinute()

	date, err := timetypes.ParseDateOnly(req.Date)
	if err != nil {
		return nil, &InvalidTimeFormatError{Value: req.Date, Want: "YYYY-MM-DD"}
	}
	if _, err := time.LoadLocation(req.TimeZone); err != nil {
		return nil, &InvalidTimeZoneError{Zone: req.TimeZone}
	}

	student, err := v.entities.FindStudent(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, &NotFoundError{Entity: "student", ID: req.StudentID}
	}
	tutor, err := v.entities.FindTutor(ctx, req.TutorID)
	if err != nil {
		return nil, err
	}
	if tutor == nil {
		return nil, &NotFoundError{Entity: "tutor", ID: req.TutorID}
	}

	existing, err := v.bookings.FindBookingExact(ctx, req.TutorID, date, start, end)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotAlreadyBooked
	}

	slot, err := v.availability.FindAvailabilityExact(ctx, req.TutorID, date, start, end, false)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotUnavailable
	}

	slot.IsBooked = true
	booking := &models.Booking{
		StudentID:   req.StudentID,
		TutorID:     req.TutorID,
		Date:        date,
		StartTime:   start,
		EndTime:     end,
		TimeZone:    req.TimeZone,
		BookingTime: v.now(),
		Status:      bookingStatusConfirmed,
	}
	if err := v.bookings.SaveBookingTransaction(ctx, slot, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
