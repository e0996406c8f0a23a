package database_test

import (
	"context"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindActiveOrdersByOrderThenID(t *testing.T) {
	ctx := context.Background()
	repo := testutil.New(t).AchievementRepo()

	for _, a := range []models.Achievement{
		{Title: "third", Order: 2, IsActive: true},
		{Title: "first", Order: 1, IsActive: true},
		{Title: "hidden", Order: 0, IsActive: false},
		{Title: "second", Order: 1, IsActive: true},
	} {
		row := a
		require.NoError(t, repo.Add(ctx, &row))
	}

	got, err := repo.FindActive(ctx)
	require.NoError(t, err)

	titles := make([]string, 0, len(got))
	for _, a := range got {
		titles = append(titles, a.Title)
	}
	assert.Equal(t, []string{"first", "second", "third"}, titles)

	n, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}

func TestActiveTextsNeverNil(t *testing.T) {
	ctx := context.Background()
	repo := testutil.New(t).TypingTextRepo()

	texts, err := repo.ActiveTexts(ctx)
	require.NoError(t, err)
	assert.NotNil(t, texts)
	assert.Empty(t, texts)

	require.NoError(t, repo.Add(ctx, &models.TypingText{Text: "Go Developer", Order: 2, IsActive: true}))
	require.NoError(t, repo.Add(ctx, &models.TypingText{Text: "Hidden", Order: 0}))
	require.NoError(t, repo.Add(ctx, &models.TypingText{Text: "Backend Engineer", Order: 1, IsActive: true}))

	texts, err = repo.ActiveTexts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Backend Engineer", "Go Developer"}, texts)
}

func TestSkillCategoriesPreloadOnlyActiveSkills(t *testing.T) {
	ctx := context.Background()
	repo := testutil.New(t).SkillRepo()

	backend := models.SkillCategory{Name: "Backend", Order: 1, IsActive: true}
	hidden := models.SkillCategory{Name: "Hidden", Order: 0}
	require.NoError(t, repo.AddCategory(ctx, &backend))
	require.NoError(t, repo.AddCategory(ctx, &hidden))

	require.NoError(t, repo.AddSkill(ctx, &models.Skill{CategoryID: backend.ID, Name: "SQL", Proficiency: 80, Order: 2, IsActive: true}))
	require.NoError(t, repo.AddSkill(ctx, &models.Skill{CategoryID: backend.ID, Name: "Go", Proficiency: 150, Order: 1, IsActive: true}))
	require.NoError(t, repo.AddSkill(ctx, &models.Skill{CategoryID: backend.ID, Name: "Perl", Proficiency: 10, Order: 0}))

	got, err := repo.FindActiveCategories(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Backend", got[0].Name)
	require.Len(t, got[0].Skills, 2)
	assert.Equal(t, "Go", got[0].Skills[0].Name)
	assert.Equal(t, 100, got[0].Skills[0].Proficiency)
	assert.Equal(t, "SQL", got[0].Skills[1].Name)
}
