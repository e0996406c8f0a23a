package models

import "time"

// Project is a portfolio project card
type Project struct {
	ID          uint         `json:"id" db:"id" gorm:"primaryKey"`
	Title       string       `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Emoji       string       `json:"emoji" db:"emoji" gorm:"type:varchar(10);not null"`
	Description string       `json:"description" db:"description" gorm:"type:text;not null"`
	Image       MediaRef     `json:"image" db:"image"`
	GithubURL   string       `json:"github_url" db:"github_url" gorm:"type:text;not null"`
	LiveURL     string       `json:"live_url" db:"live_url" gorm:"type:text;not null"`
	Order       int          `json:"order" db:"order" gorm:"not null;default:0;index"`
	IsActive    bool         `json:"is_active" db:"is_active" gorm:"not null"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	Tags        []ProjectTag `json:"tags,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TagNames flattens the tag rows into plain labels
func (p Project) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}
	return names
}
