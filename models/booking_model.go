package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/timetypes"
)

// Booking is created in the same transaction that marks the matching
// AvailabilitySlot as booked. Times are stored at minute precision.
type Booking struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID   uuid.UUID           `gorm:"not null" json:"student_id"`
	TutorID     uuid.UUID           `gorm:"not null;index:idx_booking_tutor_date" json:"tutor_id"`
	Date        timetypes.DateOnly  `gorm:"type:date;not null;index:idx_booking_tutor_date" json:"date"`
	StartTime   timetypes.TimeOfDay `gorm:"type:time;not null" json:"start_time"`
	EndTime     timetypes.TimeOfDay `gorm:"type:time;not null" json:"end_time"`
	TimeZone    string              `gorm:"size:100;not null" json:"time_zone"`
	BookingTime time.Time           `gorm:"not null" json:"booking_time"`
	Status      string              `gorm:"size:20;not null;default:'confirmed'" json:"status"`
	Reference   string              `gorm:"size:10;unique" json:"reference"`

	Student Student `gorm:"foreignkey:StudentID" json:"student,omitempty"`
	Tutor   Tutor   `gorm:"foreignkey:TutorID" json:"tutor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
