package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProjectDeleteRemovesTags(t *testing.T) {
	ctx := context.Background()
	db := testutil.New(t)

	project := models.Project{
		Title:    "Site",
		IsActive: true,
		Tags:     []models.ProjectTag{{Name: "Go"}, {Name: " Go "}, {Name: ""}, {Name: "SQL"}},
	}
	require.NoError(t, db.ProjectRepo().Add(ctx, &project))

	stored, err := db.ProjectRepo().FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, stored.TagNames())

	require.NoError(t, db.ProjectRepo().Delete(ctx, project.ID))

	var n int64
	require.NoError(t, db.DB().Model(&models.ProjectTag{}).Where("project_id = ?", project.ID).Count(&n).Error)
	assert.Zero(t, n)

	err = db.ProjectRepo().Delete(ctx, project.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateWithTags(t *testing.T) {
	ctx := context.Background()
	db := testutil.New(t)
	repo := db.ProjectRepo()

	project := models.Project{Title: "CLI", IsActive: true, Tags: []models.ProjectTag{{Name: "Go"}}}
	require.NoError(t, repo.Add(ctx, &project))

	project.Tags = nil
	project.Title = "CLI v2"
	require.NoError(t, repo.UpdateWithTags(ctx, &project, nil))
	stored, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "CLI v2", stored.Title)
	assert.Equal(t, []string{"Go"}, stored.TagNames())

	project.Tags = nil
	require.NoError(t, repo.UpdateWithTags(ctx, &project, []string{"Rust", "Rust", " WASM "}))
	stored, err = repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rust", "WASM"}, stored.TagNames())

	missing := models.Project{ID: project.ID + 100, Title: "ghost"}
	assert.ErrorIs(t, repo.UpdateWithTags(ctx, &missing, []string{"x"}), gorm.ErrRecordNotFound)
	var n int64
	require.NoError(t, db.DB().Model(&models.Project{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestUpdateWithTagsRollsBackColumnsWhenTagsFail(t *testing.T) {
	ctx := context.Background()
	db := testutil.New(t)
	repo := db.ProjectRepo()

	project := models.Project{Title: "Site", IsActive: true, Tags: []models.ProjectTag{{Name: "Go"}}}
	require.NoError(t, repo.Add(ctx, &project))

	err := db.DB().Callback().Create().Before("gorm:create").Register("test:fail_project_tags", func(tx *gorm.DB) {
		if tx.Statement.Schema != nil && tx.Statement.Schema.Table == "project_tags" {
			_ = tx.AddError(errors.New("tag insert failed"))
		}
	})
	require.NoError(t, err)

	project.Tags = nil
	project.Title = "Site v2"
	err = repo.UpdateWithTags(ctx, &project, []string{"Rust"})
	require.Error(t, err)

	stored, err := repo.FindByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Site", stored.Title)
	assert.Equal(t, []string{"Go"}, stored.TagNames())
}

func TestDeleteSkillCategoryRemovesSkills(t *testing.T) {
	ctx := context.Background()
	db := testutil.New(t)
	repo := db.SkillRepo()

	category := models.SkillCategory{Name: "Tools", IsActive: true}
	require.NoError(t, repo.AddCategory(ctx, &category))
	require.NoError(t, repo.AddSkill(ctx, &models.Skill{CategoryID: category.ID, Name: "Docker", IsActive: true}))

	require.NoError(t, repo.DeleteCategory(ctx, category.ID))

	var n int64
	require.NoError(t, db.DB().Model(&models.Skill{}).Count(&n).Error)
	assert.Zero(t, n)

	assert.ErrorIs(t, repo.DeleteCategory(ctx, category.ID), gorm.ErrRecordNotFound)
}

func TestDeleteCertificateCategoryKeepsCertificates(t *testing.T) {
	ctx := context.Background()
	db := testutil.New(t)
	repo := db.CertificateRepo()

	category := models.CertificateCategory{Name: "Cloud", IsActive: true}
	require.NoError(t, repo.AddCategory(ctx, &category))
	cert := models.Certificate{Title: "Cloud Fundamentals", CategoryID: &category.ID, IsActive: true}
	require.NoError(t, repo.Add(ctx, &cert))

	require.NoError(t, repo.DeleteCategory(ctx, category.ID))

	got, err := repo.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].CategoryID)
	assert.Equal(t, "", got[0].CategoryName())
}
