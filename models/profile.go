package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultCupsOfCoffee is shown when no profile row exists yet
const DefaultCupsOfCoffee = 1000

// Profile holds the site owner's details. At most one row exists.
type Profile struct {
	ID            uint      `json:"id" db:"id" gorm:"primaryKey"`
	Singleton     int       `json:"-" db:"singleton" gorm:"not null;uniqueIndex:idx_profile_singleton"`
	Name          string    `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Tagline       string    `json:"tagline" db:"tagline" gorm:"type:varchar(200);not null"`
	Description   string    `json:"description" db:"description" gorm:"type:text;not null"`
	AboutText1    string    `json:"about_text_1" db:"about_text_1" gorm:"column:about_text_1;type:text;not null"`
	AboutText2    string    `json:"about_text_2" db:"about_text_2" gorm:"column:about_text_2;type:text;not null"`
	AboutText3    string    `json:"about_text_3" db:"about_text_3" gorm:"column:about_text_3;type:text;not null"`
	ProfileImage  MediaRef  `json:"profile_image" db:"profile_image"`
	Resume        MediaRef  `json:"resume" db:"resume"`
	Email         string    `json:"email" db:"email" gorm:"type:varchar(254);not null"`
	Location      string    `json:"location" db:"location" gorm:"type:varchar(200);not null"`
	GithubURL     string    `json:"github_url" db:"github_url" gorm:"type:text;not null"`
	LinkedinURL   string    `json:"linkedin_url" db:"linkedin_url" gorm:"type:text;not null"`
	LeetcodeURL   string    `json:"leetcode_url" db:"leetcode_url" gorm:"type:text;not null"`
	HackerrankURL string    `json:"hackerrank_url" db:"hackerrank_url" gorm:"type:text;not null"`
	CupsOfCoffee  int       `json:"cups_of_coffee" db:"cups_of_coffee" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// BeforeSave pins every row to the same singleton key so a second insert
// violates idx_profile_singleton.
func (p *Profile) BeforeSave(tx *gorm.DB) error {
	p.Singleton = 1
	return nil
}
