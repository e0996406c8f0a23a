package database

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ProjectTagRepo struct {
	db *gorm.DB
}

func NewProjectTagRepo(db *gorm.DB) *ProjectTagRepo {
	return &ProjectTagRepo{db}
}

// DistinctNames lists every tag label in use, alphabetically
func (r *ProjectTagRepo) DistinctNames(ctx context.Context) ([]string, error) {
	names := []string{}
	err := r.db.WithContext(ctx).
		Model(&models.ProjectTag{}).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error
	return names, err
}
