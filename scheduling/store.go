package scheduling

import (
	"context"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/timetypes"
)

// AvailabilityStore is the availability-lookup collaborator. Lookups return
// nil without error when nothing matches.
type AvailabilityStore interface {
	FindAvailability(ctx context.Context, tutorID uuid.UUID, date timetypes.DateOnly) ([]models.AvailabilitySlot, error)
	FindAvailabilityExact(ctx context.Context, tutorID uuid.UUID, date timetypes.DateOnly, start, end timetypes.TimeOfDay, booked bool) (*models.AvailabilitySlot, error)
	// SaveAvailabilityBatch persists the staged slots as one transaction.
	SaveAvailabilityBatch(ctx context.Context, slots []models.AvailabilitySlot) error
}

// BookingStore is the booking-lookup collaborator.
type BookingStore interface {
	FindBookingExact(ctx context.Context, tutorID uuid.UUID, date timetypes.DateOnly, start, end timetypes.TimeOfDay) (*models.Booking, error)
	// SaveBookingTransaction marks the slot booked and inserts the booking in
	// one transaction. The flag flip must be conditional on the slot still
	// being unbooked; a lost race surfaces as ErrSlotUnavailable and leaves
	// neither write applied.
	SaveBookingTransaction(ctx context.Context, slot *models.AvailabilitySlot, booking *models.Booking) error
}

// EntityStore resolves directory entities. Lookups return nil without error
// when the id is unknown.
type EntityStore interface {
	FindTutor(ctx context.Context, id uuid.UUID) (*models.Tutor, error)
	FindStudent(ctx context.Context, id uuid.UUID) (*models.Student, error)
}
