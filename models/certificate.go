package models

// CertificateCategory groups certificates by issuer family
type CertificateCategory struct {
	ID       uint   `json:"id" db:"id" gorm:"primaryKey"`
	Name     string `json:"name" db:"name" gorm:"type:varchar(100);not null"`
	Order    int    `json:"order" db:"order" gorm:"not null;default:0;index"`
	IsActive bool   `json:"is_active" db:"is_active" gorm:"not null"`
}

// Certificate links to an uploaded file or an external credential page.
// Deleting its category leaves the certificate with a NULL category.
type Certificate struct {
	ID              uint                 `json:"id" db:"id" gorm:"primaryKey"`
	CategoryID      *uint                `json:"category_id" db:"category_id" gorm:"index:idx_certificate_category_id"`
	Category        *CertificateCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Title           string               `json:"title" db:"title" gorm:"type:varchar(200);not null"`
	Issuer          string               `json:"issuer" db:"issuer" gorm:"type:varchar(200);not null"`
	Description     string               `json:"description" db:"description" gorm:"type:varchar(200);not null"`
	Icon            string               `json:"icon" db:"icon_class" gorm:"column:icon_class;type:varchar(100);not null"`
	CertificateFile MediaRef             `json:"certificate_file" db:"certificate_file"`
	CertificateURL  string               `json:"certificate_url" db:"certificate_url" gorm:"type:text;not null"`
	Order           int                  `json:"order" db:"order" gorm:"not null;default:0;index"`
	IsActive        bool                 `json:"is_active" db:"is_active" gorm:"not null"`
}

// CategoryName is empty when the certificate is uncategorised
func (c Certificate) CategoryName() string {
	if c.Category == nil {
		return ""
	}
	return c.Category.Name
}
