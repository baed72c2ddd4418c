package models

import (
	"time"

	"github.com/google/uuid"
)

type Tutor struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	TimeZone string    `gorm:"size:100;not null;default:'UTC'" json:"time_zone"`
	Bio      *string   `gorm:"type:text" json:"bio,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
