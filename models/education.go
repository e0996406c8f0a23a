package models

// Education is one entry of the education timeline
type Education struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey"`
	Degree      string `json:"degree" db:"degree" gorm:"type:varchar(200);not null"`
	Institution string `json:"institution" db:"institution" gorm:"type:varchar(200);not null"`
	YearRange   string `json:"year_range" db:"year_range" gorm:"type:varchar(50);not null"`
	Grade       string `json:"grade" db:"grade" gorm:"type:varchar(50);not null"`
	Order       int    `json:"order" db:"order" gorm:"not null;default:0;index"`
	IsActive    bool   `json:"is_active" db:"is_active" gorm:"not null"`
}

// TableName keeps the singular name, "educations" reads badly
func (Education) TableName() string {
	return "education"
}
