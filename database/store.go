package database

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/models"
	"github.com/jakendu/tutorbook/scheduling"
	"github.com/jakendu/tutorbook/timetypes"
	"github.com/jakendu/tutorbook/utils"
	"gorm.io/gorm"
)

// Store implements the scheduling collaborator interfaces on GORM/Postgres.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindAvailability(ctx context.Context, tutorID uuid.UUID, date timetypes.DateOnly) ([]models.AvailabilitySlot, error) {
	var slots []models.AvailabilitySlot
	err := s.db.WithContext(ctx).
		Where("tutor_id = ? AND date = ?", tutorID, date).
		Order("start_time asc").
		Find(&slots).Error
	return slots, err
}

func (s *Store) FindAvailabilityExact(ctx context.Context, tutorID uuid.UUID, date timetypes.DateOnly, start, end timetypes.TimeOfDay, booked bool) (*models.AvailabilitySlot, error) {
	var slot models.AvailabilitySlot
	err := s.db.WithContext(ctx).
		Where("tutor_id = ? AND date = ? AND start_time = ? AND end_time = ? AND is_booked = ?",
			tutorID, date, start, end, booked).
		First(&slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *Store) SaveAvailabilityBatch(ctx context.Context, slots []models.AvailabilitySlot) error {
	if len(slots) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&slots).Error
	})
}

func (s *Store) FindBookingExact(ctx context.Context, tutorID uuid.UUID, date timetypes.DateOnly, start, end timetypes.TimeOfDay) (*models.Booking, error) {
	var booking models.Booking
	err := s.db.WithContext(ctx).
		Where("tutor_id = ? AND date = ? AND start_time = ? AND end_time = ?",
			tutorID, date, start, end).
		First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// SaveBookingTransaction commits the flag flip and the booking insert as one
// transaction. The flip is a conditional update on is_booked = false; zero
// affected rows means another request claimed the slot first, and the whole
// transaction rolls back with ErrSlotUnavailable.
func (s *Store) SaveBookingTransaction(ctx context.Context, slot *models.AvailabilitySlot, booking *models.Booking) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.AvailabilitySlot{}).
			Where("id = ? AND is_booked = ?", slot.ID, false).
			Update("is_booked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return scheduling.ErrSlotUnavailable
		}

		reference, err := utils.GenerateUniqueBookingReference(tx)
		if err != nil {
			return err
		}
		booking.Reference = reference

		return tx.Create(booking).Error
	})
}

func (s *Store) FindTutor(ctx context.Context, id uuid.UUID) (*models.Tutor, error) {
	var tutor models.Tutor
	err := s.db.WithContext(ctx).First(&tutor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tutor, nil
}

func (s *Store) FindStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := s.db.WithContext(ctx).First(&student, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &student, nil
}
