package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindActiveCategories returns visible categories in display order, each with
// only its visible skills in display order.
func (r *SkillRepo) FindActiveCategories(ctx context.Context) ([]models.SkillCategory, error) {
	var categories []models.SkillCategory
	err := r.db.WithContext(ctx).
		Scopes(activeOrdered).
		Preload("Skills", activeOrdered).
		Find(&categories).Error
	return categories, err
}

// FindAllCategories returns every category with every skill, hidden ones included
func (r *SkillRepo) FindAllCategories(ctx context.Context) ([]models.SkillCategory, error) {
	categories := []models.SkillCategory{}
	err := r.db.WithContext(ctx).
		Scopes(displayOrder).
		Preload("Skills", displayOrder).
		Find(&categories).Error
	return categories, err
}

func (r *SkillRepo) FindCategoryByID(ctx context.Context, id uint) (*models.SkillCategory, error) {
	var category models.SkillCategory
	if err := findByID(ctx, r.db, &category, id); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *SkillRepo) AddCategory(ctx context.Context, category *models.SkillCategory) error {
	return r.db.WithContext(ctx).Omit("Skills").Create(category).Error
}

func (r *SkillRepo) UpdateCategory(ctx context.Context, category *models.SkillCategory) error {
	return r.db.WithContext(ctx).Omit("Skills").Save(category).Error
}

func (r *SkillRepo) SetCategoryListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.SkillCategory{}, id, patch)
}

// DeleteCategory removes a category together with every skill in it
func (r *SkillRepo) DeleteCategory(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.Skill{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.SkillCategory{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// FindAllSkills returns every skill grouped by category, hidden ones included
func (r *SkillRepo) FindAllSkills(ctx context.Context) ([]models.Skill, error) {
	skills := []models.Skill{}
	err := r.db.WithContext(ctx).
		Order("category_id").
		Scopes(displayOrder).
		Find(&skills).Error
	return skills, err
}

func (r *SkillRepo) FindSkillByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := findByID(ctx, r.db, &skill, id); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) AddSkill(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Create(skill).Error
}

func (r *SkillRepo) UpdateSkill(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).Save(skill).Error
}

func (r *SkillRepo) SetSkillListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.Skill{}, id, patch)
}

func (r *SkillRepo) DeleteSkill(ctx context.Context, id uint) error {
	return deleteByID(ctx, r.db, &models.Skill{}, id)
}
