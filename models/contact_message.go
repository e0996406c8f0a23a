package models

import (
	"time"

	"gorm.io/datatypes"
)

// ContactMessage is a contact form submission. Only IsRead changes after insert.
type ContactMessage struct {
	ID        uint              `json:"id" db:"id" gorm:"primaryKey"`
	Name      string            `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Email     string            `json:"email" db:"email" gorm:"type:varchar(254);not null"`
	Subject   string            `json:"subject" db:"subject" gorm:"type:varchar(200);not null"`
	Message   string            `json:"message" db:"message" gorm:"type:text;not null"`
	IsRead    bool              `json:"is_read" db:"is_read" gorm:"not null;default:false;index"`
	Metadata  datatypes.JSONMap `json:"metadata,omitempty" db:"metadata"`
	CreatedAt time.Time         `json:"created_at" db:"created_at" gorm:"index"`
}
