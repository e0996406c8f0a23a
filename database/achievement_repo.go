package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type AchievementRepo struct {
	db *gorm.DB
}

func NewAchievementRepo(db *gorm.DB) *AchievementRepo {
	return &AchievementRepo{db}
}

func (r *AchievementRepo) FindActive(ctx context.Context) ([]models.Achievement, error) {
	var achievements []models.Achievement
	err := r.db.WithContext(ctx).Scopes(activeOrdered).Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepo) FindAll(ctx context.Context) ([]models.Achievement, error) {
	achievements := []models.Achievement{}
	err := r.db.WithContext(ctx).Scopes(displayOrder).Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepo) FindByID(ctx context.Context, id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := findByID(ctx, r.db, &achievement, id); err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *AchievementRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Achievement{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

func (r *AchievementRepo) Add(ctx context.Context, achievement *models.Achievement) error {
	return r.db.WithContext(ctx).Create(achievement).Error
}

func (r *AchievementRepo) Update(ctx context.Context, achievement *models.Achievement) error {
	return r.db.WithContext(ctx).Save(achievement).Error
}

func (r *AchievementRepo) SetListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.Achievement{}, id, patch)
}

func (r *AchievementRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Achievement{}, id)
}
