package models_test

import (
	"bytes"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnMismatchesOnFreshSchema(t *testing.T) {
	db := testutil.DB(t)

	report, err := models.ColumnMismatches(db)
	require.NoError(t, err)
	assert.Len(t, report, len(models.All()))
	for table, cols := range report {
		assert.Empty(t, cols, table)
	}
}

func TestColumnMismatchesFindsStrayColumn(t *testing.T) {
	db := testutil.DB(t)
	require.NoError(t, db.Exec("ALTER TABLE projects ADD COLUMN legacy_slug TEXT").Error)

	report, err := models.ColumnMismatches(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy_slug"}, report["projects"])

	var out bytes.Buffer
	require.NoError(t, models.WriteColumnMismatchReport(&out, db))
	assert.Contains(t, out.String(), "legacy_slug")
	assert.Contains(t, out.String(), "--- Table: projects ---")
}

func TestProfileSingletonIsUniqueInSchema(t *testing.T) {
	db := testutil.DB(t)

	require.NoError(t, db.Create(&models.Profile{Name: "A"}).Error)
	err := db.Create(&models.Profile{Name: "B"}).Error
	assert.Error(t, err)
}
