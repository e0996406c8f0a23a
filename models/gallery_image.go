package models

import "time"

type GalleryImage struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Title     string    `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Subtitle  string    `json:"subtitle" db:"subtitle" gorm:"type:varchar(200);not null"`
	Image     MediaRef  `json:"image" db:"image"`
	Order     int       `json:"order" db:"order" gorm:"not null;default:0;index"`
	IsActive  bool      `json:"is_active" db:"is_active" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
