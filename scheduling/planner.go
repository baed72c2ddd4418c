package scheduling

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/timetypes"
)

type PlanRequest struct {
	TutorID     uuid.UUID
	Date        string
	StartTime   string
	EndTime     string
	TimeZone    string
	Recurrence  string
	Occurrences int
}

// AvailabilityPlanner validates and stages a batch of availability slots for
// a tutor, expanding a recurrence into per-date occurrences and checking each
// against the tutor's existing slots.
type AvailabilityPlanner struct {
	availability AvailabilityStore
}

func NewAvailabilityPlanner(availability AvailabilityStore) *AvailabilityPlanner {
	return &AvailabilityPlanner{availability: availability}
}

// Plan returns the full staged slot list, or fails on the first conflicting
// occurrence with no slots staged at all. It only reads from storage; the
// caller persists the batch through SaveAvailabilityBatch to keep the write
// all-or-nothing.
func (p *AvailabilityPlanner) Plan(ctx context.Context, req PlanRequest) ([]models.AvailabilitySlot, error) {
	switch {
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
	baseDate, err := timetypes.ParseDateOnly(req.Date)
	if err != nil {
		return nil, &InvalidTimeFormatError{Value: req.Date, Want: "YYYY-MM-DD"}
	}
	if _, err := time.LoadLocation(req.TimeZone); err != nil {
		return nil, &InvalidTimeZoneError{Zone: req.TimeZone}
	}
	if !start.Before(end) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	spec := RecurrenceSpec{Mode: RecurrenceMode(req.Recurrence), Occurrences: req.Occurrences}

	dates := spec.Expand(baseDate)
	slots := make([]models.AvailabilitySlot, 0, len(dates))
	for _, date := range dates {
		existing, err := p.availability.FindAvailability(ctx, req.TutorID, date)
		if err != nil {
			return nil, err
		}
		for _, slot := range existing {
			if Overlaps(start, end, slot.StartTime, slot.EndTime) {
				return nil, &ConflictError{Date: date, Slot: slot}
			}
		}
		slots = append(slots, models.AvailabilitySlot{
			TutorID:   req.TutorID,
			Date:      date,
			StartTime: start,
			EndTime:   end,
			TimeZone:  req.TimeZone,
		})
	}
	return slots, nil
}
