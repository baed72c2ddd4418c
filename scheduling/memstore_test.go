package scheduling

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/timetypes"
)

// memStore implements the storage collaborators in memory. The booking
// transaction flips the flag conditionally under the lock, matching the
// guarantees the real store provides.
type memStore struct {
	mu       sync.Mutex
	slots    []*models.AvailabilitySlot
	bookings []*models.Booking
	tutors   map[uuid.UUID]*models.Tutor
	students map[uuid.UUID]*models.Student
}

func newMemStore() *memStore {
	return &memStore{
		tutors:   make(map[uuid.UUID]*models.Tutor),
		students: make(map[uuid.UUID]*models.Student),
	}
}

func (s *memStore) addSlot(slot models.AvailabilitySlot) *models.AvailabilitySlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}
	stored := slot
	s.slots = append(s.slots, &stored)
	return &stored
}

func (s *memStore) addTutor() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.tutors[id] = &models.Tutor{ID: id, FullName: "Tutor", Email: id.String() + "@example.com"}
	return id
}

func (s *memStore) addStudent() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.students[id] = &models.Student{ID: id, FullName: "Student", Email: id.String() + "@example.com"}
	return id
}

func (s *memStore) FindAvailability(_ context.Context, tutorID uuid.UUID, date timetypes.DateOnly) ([]models.AvailabilitySlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.AvailabilitySlot
	for _, slot := range s.slots {
		if slot.TutorID == tutorID && slot.Date.Equal(date) {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (s *memStore) FindAvailabilityExact(_ context.Context, tutorID uuid.UUID, date timetypes.DateOnly, start, end timetypes.TimeOfDay, booked bool) (*models.AvailabilitySlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, slot := range s.slots {
		if slot.TutorID == tutorID && slot.Date.Equal(date) &&
			slot.StartTime.Equal(start) && slot.EndTime.Equal(end) && slot.IsBooked == booked {
			copied := *slot
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStore) SaveAvailabilityBatch(_ context.Context, slots []models.AvailabilitySlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range slots {
		stored := slots[i]
		if stored.ID == uuid.Nil {
			stored.ID = uuid.New()
		}
		s.slots = append(s.slots, &stored)
	}
	return nil
}

func (s *memStore) FindBookingExact(_ context.Context, tutorID uuid.UUID, date timetypes.DateOnly, start, end timetypes.TimeOfDay) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.TutorID == tutorID && b.Date.Equal(date) && b.StartTime.Equal(start) && b.EndTime.Equal(end) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memStore) SaveBookingTransaction(_ context.Context, slot *models.AvailabilitySlot, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, stored := range s.slots {
		if stored.ID == slot.ID {
			if stored.IsBooked {
				return ErrSlotUnavailable
			}
			stored.IsBooked = true
			if booking.ID == uuid.Nil {
				booking.ID = uuid.New()
			}
			copied := *booking
			s.bookings = append(s.bookings, &copied)
			return nil
		}
	}
	return ErrSlotUnavailable
}

func (s *memStore) FindTutor(_ context.Context, id uuid.UUID) (*models.Tutor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tutors[id], nil
}

func (s *memStore) FindStudent(_ context.Context, id uuid.UUID) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students[id], nil
}
