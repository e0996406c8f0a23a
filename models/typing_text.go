package models

// TypingText is one phrase of the hero typing animation
type TypingText struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey"`
	Text     string `json:"text" db:"text" gorm:"type:varchar(200);not null"`
	Order    int    `json:"order" db:"order" gorm:"not null;default:0;index"`
	IsActive bool   `json:"is_active" db:"is_active" gorm:"not null"`
}
