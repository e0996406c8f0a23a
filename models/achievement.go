package models

// Achievement is an award or milestone. Date is a free-text label ("2024-2025").
type Achievement struct {
	ID          uint   `json:"id" db:"id" gorm:"primaryKey"`
	Title       string `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
	Date        string `json:"date" db:"date" gorm:"type:varchar(50);not null"`
	Icon        string `json:"icon" db:"icon_class" gorm:"column:icon_class;type:varchar(100);not null"`
	Order       int    `json:"order" db:"order" gorm:"not null;default:0;index"`
	IsActive    bool   `json:"is_active" db:"is_active" gorm:"not null"`
}
