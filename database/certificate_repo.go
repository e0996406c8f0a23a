package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

// FindActive returns visible certificates in display order with their category
func (r *CertificateRepo) FindActive(ctx context.Context) ([]models.Certificate, error) {
	var certificates []models.Certificate
	err := r.db.WithContext(ctx).
		Scopes(activeOrdered).
		Preload("Category").
		Find(&certificates).Error
	return certificates, err
}

// FindAll returns every certificate with its category, hidden ones included
func (r *CertificateRepo) FindAll(ctx context.Context) ([]models.Certificate, error) {
	certificates := []models.Certificate{}
	err := r.db.WithContext(ctx).
		Scopes(displayOrder).
		Preload("Category").
		Find(&certificates).Error
	return certificates, err
}

func (r *CertificateRepo) FindByID(ctx context.Context, id uint) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.db.WithContext(ctx).Preload("Category").First(&certificate, id).Error
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *CertificateRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Certificate{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *CertificateRepo) Add(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Omit("Category").Create(certificate).Error
}

func (r *CertificateRepo) Update(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Omit("Category").Save(certificate).Error
}

func (r *CertificateRepo) SetListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.Certificate{}, id, patch)
}

func (r *CertificateRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Certificate{}, id)
}

func (r *CertificateRepo) FindAllCategories(ctx context.Context) ([]models.CertificateCategory, error) {
	categories := []models.CertificateCategory{}
	err := r.db.WithContext(ctx).Scopes(displayOrder).Find(&categories).Error
	return categories, err
}

func (r *CertificateRepo) FindCategoryByID(ctx context.Context, id uint) (*models.CertificateCategory, error) {
	var category models.CertificateCategory
	if err := findByID(ctx, r.db, &category, id); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CertificateRepo) AddCategory(ctx context.Context, category *models.CertificateCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *CertificateRepo) UpdateCategory(ctx context.Context, category *models.CertificateCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *CertificateRepo) SetCategoryListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.CertificateCategory{}, id, patch)
}

// DeleteCategory removes a category; its certificates stay, uncategorised
func (r *CertificateRepo) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Certificate{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error
		if err != nil {
			return err
		}
		res := tx.Delete(&models.CertificateCategory{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
