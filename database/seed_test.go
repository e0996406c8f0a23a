package database_test

import (
	"context"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, db database.Database, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.DB().Model(model).Count(&n).Error)
	return n
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.New(t)

	first, err := database.Seed(ctx, db.DB())
	require.NoError(t, err)
	assert.Equal(t, 1, first.Profiles)
	assert.NotZero(t, first.Projects)

	counts := func() []int64 {
		return []int64{
			countRows(t, db, &models.Profile{}),
			countRows(t, db, &models.TypingText{}),
			countRows(t, db, &models.Education{}),
			countRows(t, db, &models.SkillCategory{}),
			countRows(t, db, &models.Skill{}),
			countRows(t, db, &models.Project{}),
			countRows(t, db, &models.ProjectTag{}),
			countRows(t, db, &models.Achievement{}),
			countRows(t, db, &models.CertificateCategory{}),
			countRows(t, db, &models.Certificate{}),
			countRows(t, db, &models.GalleryImage{}),
		}
	}
	before := counts()

	second, err := database.Seed(ctx, db.DB())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, before, counts())

	assert.EqualValues(t, first.Projects, before[5])
	assert.EqualValues(t, first.Skills, before[4])
	assert.Zero(t, countRows(t, db, &models.ContactMessage{}))
}
