package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

// FindActive returns visible education entries in display order
func (r *EducationRepo) FindActive(ctx context.Context) ([]models.Education, error) {
	var entries []models.Education
	err := r.db.WithContext(ctx).Scopes(activeOrdered).Find(&entries).Error
	return entries, err
}

// FindAll returns every entry, hidden ones included
func (r *EducationRepo) FindAll(ctx context.Context) ([]models.Education, error) {
	entries := []models.Education{}
	err := r.db.WithContext(ctx).Scopes(displayOrder).Find(&entries).Error
	return entries, err
}

func (r *EducationRepo) FindByID(ctx context.Context, id uint) (*models.Education, error) {
	var entry models.Education
	if err := findByID(ctx, r.db, &entry, id); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *EducationRepo) Add(ctx context.Context, entry *models.Education) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *EducationRepo) Update(ctx context.Context, entry *models.Education) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *EducationRepo) SetListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.Education{}, id, patch)
}

func (r *EducationRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Education{}, id)
}
