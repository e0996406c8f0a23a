package database

import (
	"context"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

func tagsInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}

// FindActive returns visible projects in display order with their tags
func (r *ProjectRepo) FindActive(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Scopes(activeOrdered).
		Preload("Tags", tagsInOrder).
		Find(&projects).Error
	return projects, err
}

// FindAll returns every project, hidden ones included, for the admin view
func (r *ProjectRepo) FindAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Scopes(displayOrder).
		Preload("Tags", tagsInOrder).
		Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID
func (r *ProjectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("Tags", tagsInOrder).First(&project, id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// Add inserts a new project and its tags
func (r *ProjectRepo) Add(ctx context.Context, project *models.Project) error {
	project.Tags = dedupeTags(project.Tags)
	return r.db.WithContext(ctx).Create(project).Error
}

// UpdateWithTags writes the project columns and, when names is non-nil,
// swaps the tag set for names, dropping blanks and duplicates. Both happen in
// one transaction.
func (r *ProjectRepo) UpdateWithTags(ctx context.Context, project *models.Project, names []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Project{}).Where("id = ?", project.ID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.Omit("Tags", "created_at").Save(project).Error; err != nil {
			return err
		}
		if names == nil {
			return nil
		}
		return replaceTags(tx, project.ID, names)
	})
}

func replaceTags(tx *gorm.DB, projectID uint, names []string) error {
	tags := make([]models.ProjectTag, 0, len(names))
	for _, name := range names {
		tags = append(tags, models.ProjectTag{ProjectID: projectID, Name: name})
	}
	tags = dedupeTags(tags)

	if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTag{}).Error; err != nil {
		return err
	}
	if len(tags) == 0 {
		return nil
	}
	return tx.Create(&tags).Error
}

func (r *ProjectRepo) SetListing(ctx context.Context, id uint, patch ListingPatch) error {
	return setListing(ctx, r.db, &models.Project{}, id, patch)
}

// Delete removes a project and its tags
func (r *ProjectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectTag{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Project{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func dedupeTags(tags []models.ProjectTag) []models.ProjectTag {
	seen := make(map[string]struct{}, len(tags))
	out := make([]models.ProjectTag, 0, len(tags))
	for _, t := range tags {
		t.Name = strings.TrimSpace(t.Name)
		if t.Name == "" {
			continue
		}
		if _, ok := seen[t.Name]; ok {
			continue
		}
		seen[t.Name] = struct{}{}
		out = append(out, t)
	}
	return out
}
