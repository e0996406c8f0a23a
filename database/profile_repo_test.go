package database_test

import (
	"context"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFirstIsNilWhenEmpty(t *testing.T) {
	repo := testutil.New(t).ProfileRepo()

	profile, err := repo.First(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileSaveReusesSingleRow(t *testing.T) {
	ctx := context.Background()
	repo := testutil.New(t).ProfileRepo()

	first := models.Profile{Name: "Jane Doe", Email: "jane@example.com", CupsOfCoffee: 12}
	require.NoError(t, repo.Save(ctx, &first))
	require.NotZero(t, first.ID)

	second := models.Profile{Name: "Jane Q. Doe", Email: "jane@example.org", CupsOfCoffee: 40}
	require.NoError(t, repo.Save(ctx, &second))
	assert.Equal(t, first.ID, second.ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	stored, err := repo.First(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Jane Q. Doe", stored.Name)
	assert.Equal(t, "jane@example.org", stored.Email)
	assert.Equal(t, 40, stored.CupsOfCoffee)
}

func TestGetOrCreateSingleton(t *testing.T) {
	ctx := context.Background()
	repo := testutil.New(t).ProfileRepo()

	created, err := repo.GetOrCreateSingleton(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCupsOfCoffee, created.CupsOfCoffee)

	again, err := repo.GetOrCreateSingleton(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
