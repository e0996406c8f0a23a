package models

// ProjectTag represents a tag associated with a project
type ProjectTag struct {
	ID        uint   `json:"id" db:"id" gorm:"primaryKey"`
	ProjectID uint   `json:"project_id" db:"project_id" gorm:"not null;index:idx_project_tag_project_id;uniqueIndex:idx_project_tag_unique"`
	Name      string `json:"name" db:"name" gorm:"type:varchar(50);not null;uniqueIndex:idx_project_tag_unique"`
}
