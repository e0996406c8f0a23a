package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type TypingTextRepo struct {
	db *gorm.DB
}

func NewTypingTextRepo(db *gorm.DB) *TypingTextRepo {
	return &TypingTextRepo{db}
}

// ActiveTexts returns the visible phrases in display order
func (r *TypingTextRepo) ActiveTexts(ctx context.Context) ([]string, error) {
	texts := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.TypingText{}).
		Scopes(activeOrdered).
		Pluck("text", &texts).Error
	return texts, err
}

func (r *TypingTextRepo) FindAll(ctx context.Context) ([]models.TypingText, error) {
	texts := []models.TypingText{}
	err := r.db.WithContext(ctx).Scopes(displayOrder).Find(&texts).Error
	return texts, err
}

func (r *TypingTextRepo) FindByID(ctx context.Context, id uint) (*models.TypingText, error) {
	var text models.TypingText
	if err := findByID(ctx, r.db, &text, id); err != nil {
		return nil, err
	}
	return &text, nil
}

func (r *TypingTextRepo) Add(ctx context.Context, text *models.TypingText) error {
	return r.db.WithContext(ctx).Create(text).Error
}

func (r *TypingTextRepo) Update(ctx context.Context, text *models.TypingText) error {
	return r.db.WithContext(ctx).Save(text).Error
}

func (r *TypingTextRepo) SetListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.TypingText{}, id, patch)
}

func (r *TypingTextRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.TypingText{}, id)
}
