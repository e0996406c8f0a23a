package models

import "gorm.io/gorm"

// SkillCategory groups skills, e.g. "Programming Languages"
type SkillCategory struct {
	ID       uint    `json:"id" db:"id" gorm:"primaryKey"`
	Name     string  `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Icon     string  `json:"icon" db:"icon_class" gorm:"column:icon_class;type:varchar(100);not null"`
	Order    int     `json:"order" db:"order" gorm:"not null;default:0;index"`
	IsActive bool    `json:"is_active" db:"is_active" gorm:"not null"`
	Skills   []Skill `json:"skills,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// Skill is a single skill with a 0-100 proficiency
type Skill struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey"`
	CategoryID  uint   `json:"category_id" db:"category_id" gorm:"not null;index:idx_skill_category_id"`
	Name        string `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Icon        string `json:"icon" db:"icon_class" gorm:"column:icon_class;type:varchar(100);not null"`
	Proficiency int    `json:"proficiency" db:"proficiency" gorm:"not null"`
	Order       int    `json:"order" db:"order" gorm:"not null;default:0"`
	IsActive    bool   `json:"is_active" db:"is_active" gorm:"not null"`
}

// ClampProficiency bounds p to [0,100]
func ClampProficiency(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}

func (s *Skill) BeforeSave(tx *gorm.DB) error {
	s.Proficiency = ClampProficiency(s.Proficiency)
	return nil
}
