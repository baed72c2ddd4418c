package scheduling

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/timetypes"
)

var (
	// ErrSlotAlreadyBooked means an identical booking already exists for the tutor.
	ErrSlotAlreadyBooked = errors.New("slot already booked")
	// ErrSlotUnavailable means no unbooked availability matches the requested slot exactly.
	ErrSlotUnavailable = errors.New("no available slot found")
)

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

type InvalidTimeFormatError struct {
	Value string
	Want  string
}

func (e *InvalidTimeFormatError) Error() string {
	return fmt.Sprintf("invalid value %q: expected %s", e.Value, e.Want)
}

type InvalidTimeZoneError struct {
	Zone string
}

func (e *InvalidTimeZoneError) Error() string {
	return fmt.Sprintf("invalid timezone %q", e.Zone)
}

type InvalidRangeError struct {
	Start timetypes.TimeOfDay
	End   timetypes.TimeOfDay
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("start time %s must be before end time %s", e.Start, e.End)
}

// ConflictError carries the occurrence date and the published slot the
// requested interval overlaps with.
type ConflictError struct {
	Date timetypes.DateOnly
	Slot models.AvailabilitySlot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s: %s - %s", e.Date, e.Slot.StartTime, e.Slot.EndTime)
}

type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}
