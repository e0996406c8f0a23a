package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type GalleryImageRepo struct {
	db *gorm.DB
}

func NewGalleryImageRepo(db *gorm.DB) *GalleryImageRepo {
	return &GalleryImageRepo{db}
}

func (r *GalleryImageRepo) FindActive(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := r.db.WithContext(ctx).Scopes(activeOrdered).Find(&images).Error
	return images, err
}

func (r *GalleryImageRepo) FindAll(ctx context.Context) ([]models.GalleryImage, error) {
	images := []models.GalleryImage{}
	err := r.db.WithContext(ctx).Scopes(displayOrder).Find(&images).Error
	return images, err
}

func (r *GalleryImageRepo) FindByID(ctx context.Context, id uint) (*models.GalleryImage, error) {
	var image models.GalleryImage
	if err := findByID(ctx, r.db, &image, id); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *GalleryImageRepo) Add(ctx context.Context, image *models.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *GalleryImageRepo) Update(ctx context.Context, image *models.GalleryImage) error {
	return r.db.WithContext(ctx).Omit("created_at").Save(image).Error
}

func (r *GalleryImageRepo) SetListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.GalleryImage{}, id, patch)
}

func (r *GalleryImageRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.GalleryImage{}, id)
}
