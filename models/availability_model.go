package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/jakendu/tutorbook/timetypes"
)

// AvailabilitySlot is a tutor-published window that a student can book.
// Start and end are wall-clock values expressed in the slot's own TimeZone;
// comparisons between a tutor's slots always happen on these stored values.
type AvailabilitySlot struct {
	ID        uuid.UUID           `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID   uuid.UUID           `gorm:"not null;index:idx_availability_tutor_date" json:"tutor_id"`
	Date      timetypes.DateOnly  `gorm:"type:date;not null;index:idx_availability_tutor_date" json:"date"`
	StartTime timetypes.TimeOfDay `gorm:"type:time;not null" json:"start_time"`
	EndTime   timetypes.TimeOfDay `gorm:"type:time;not null" json:"end_time"`
	TimeZone  string              `gorm:"size:100;not null" json:"time_zone"`
	IsBooked  bool                `gorm:"not null;default:false" json:"is_booked"`

	Tutor Tutor `gorm:"foreignkey:TutorID" json:"tutor,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
