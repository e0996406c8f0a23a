package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortfolioService(t *testing.T) (*PortfolioService, database.Database) {
	t.Helper()
	db := testutil.New(t)
	return NewPortfolioService(db, NewMediaResolver(storage.NewPublicBase("/media/"))), db
}

func TestBuildContextOnEmptyStore(t *testing.T) {
	svc, _ := newPortfolioService(t)

	got, err := svc.BuildContext(context.Background())
	require.NoError(t, err)
	assert.False(t, got.HasProfile)
	assert.Equal(t, models.DefaultCupsOfCoffee, got.Coffee)
	assert.Empty(t, got.Projects)
	assert.Empty(t, got.TypingTexts)
	assert.Zero(t, got.ProjectCount)
}

func TestDocumentOnEmptyStore(t *testing.T) {
	svc, _ := newPortfolioService(t)

	doc, err := svc.Document(context.Background())
	require.NoError(t, err)

	body, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"profile":null,"skills":[],"projects":[],"achievements":[],"certificates":[],"gallery":[]}`, string(body))
}

func TestBuildContextResolvesMedia(t *testing.T) {
	ctx := context.Background()
	svc, db := newPortfolioService(t)

	require.NoError(t, db.ProfileRepo().Save(ctx, &models.Profile{
		Name:         "Jane",
		CupsOfCoffee: 42,
		ProfileImage: models.StoredFile("profile/me.jpg"),
		Resume:       models.ExternalURL("https://files.example.com/cv.pdf"),
	}))
	require.NoError(t, db.ProjectRepo().Add(ctx, &models.Project{
		Title:    "Site",
		IsActive: true,
		Image:    models.StoredFile("projects/site.png"),
		Tags:     []models.ProjectTag{{Name: "Go"}, {Name: "HTMX"}},
	}))
	require.NoError(t, db.ProjectRepo().Add(ctx, &models.Project{Title: "Draft"}))

	got, err := svc.BuildContext(ctx)
	require.NoError(t, err)
	assert.True(t, got.HasProfile)
	assert.Equal(t, 42, got.Coffee)
	assert.Equal(t, "/media/profile/me.jpg", got.Profile.ImageURL)
	assert.Equal(t, "https://files.example.com/cv.pdf", got.Profile.ResumeURL)

	require.Len(t, got.Projects, 1)
	assert.Equal(t, "/media/projects/site.png", got.Projects[0].Image)
	assert.Equal(t, []string{"Go", "HTMX"}, got.Projects[0].Tags)
	assert.EqualValues(t, 1, got.ProjectCount)
}

func TestDocumentFromSeed(t *testing.T) {
	ctx := context.Background()
	svc, db := newPortfolioService(t)
	_, err := database.Seed(ctx, db.DB())
	require.NoError(t, err)

	doc, err := svc.Document(ctx)
	require.NoError(t, err)
	require.NotNil(t, doc.Profile)
	assert.Equal(t, "jane.doe@example.com", doc.Profile.Email)

	require.Len(t, doc.Projects, 3)
	assert.Equal(t, "Trip Planner", doc.Projects[0].Title)
	assert.Equal(t, "/media/projects/trip-planner.png", doc.Projects[0].Image)
	assert.Equal(t, []string{"Flask", "Leaflet.js"}, doc.Projects[0].Tags)
	assert.Equal(t, "", doc.Projects[2].Image)

	require.Len(t, doc.Certificates, 3)
	assert.Equal(t, "/media/certificates/cloud-fundamentals.pdf", doc.Certificates[0].Link)
	assert.Equal(t, "https://academy.example.com/verify/ml-101", doc.Certificates[1].Link)
	assert.Equal(t, "https://cdn.example.com/certificates/js.pdf", doc.Certificates[2].Link)

	require.NotEmpty(t, doc.Skills)
	assert.Equal(t, "Programming Languages", doc.Skills[0].Category)
}

func TestDocumentSkipsHiddenRows(t *testing.T) {
	ctx := context.Background()
	svc, db := newPortfolioService(t)

	require.NoError(t, db.AchievementRepo().Add(ctx, &models.Achievement{Title: "Shown", IsActive: true}))
	require.NoError(t, db.AchievementRepo().Add(ctx, &models.Achievement{Title: "Hidden"}))

	languages := models.SkillCategory{Name: "Languages", IsActive: true}
	require.NoError(t, db.SkillRepo().AddCategory(ctx, &languages))
	require.NoError(t, db.SkillRepo().AddSkill(ctx, &models.Skill{CategoryID: languages.ID, Name: "Go", Proficiency: 90, IsActive: true}))
	require.NoError(t, db.SkillRepo().AddSkill(ctx, &models.Skill{CategoryID: languages.ID, Name: "COBOL", Proficiency: 10}))
	hidden := models.SkillCategory{Name: "Retired", Order: 1}
	require.NoError(t, db.SkillRepo().AddCategory(ctx, &hidden))
	require.NoError(t, db.SkillRepo().AddSkill(ctx, &models.Skill{CategoryID: hidden.ID, Name: "Flash", IsActive: true}))

	cloud := models.CertificateCategory{Name: "Cloud", IsActive: true}
	require.NoError(t, db.CertificateRepo().AddCategory(ctx, &cloud))
	require.NoError(t, db.CertificateRepo().Add(ctx, &models.Certificate{
		Title:           "Cloud Fundamentals",
		CategoryID:      &cloud.ID,
		CertificateFile: models.StoredFile("certificates/cloud.pdf"),
		IsActive:        true,
	}))
	require.NoError(t, db.CertificateRepo().DeleteCategory(ctx, cloud.ID))

	doc, err := svc.Document(ctx)
	require.NoError(t, err)

	require.Len(t, doc.Achievements, 1)
	assert.Equal(t, "Shown", doc.Achievements[0].Title)

	require.Len(t, doc.Skills, 1)
	assert.Equal(t, "Languages", doc.Skills[0].Category)
	require.Len(t, doc.Skills[0].Skills, 1)
	assert.Equal(t, "Go", doc.Skills[0].Skills[0].Name)

	require.Len(t, doc.Certificates, 1)
	assert.Equal(t, "/media/certificates/cloud.pdf", doc.Certificates[0].Link)
}
