package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminConfig = map[string]string{"BACKEND_PASSWORD": testPassword}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAdminRoutesNeedPassword(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/admin/messages", "", bearer(testPassword))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminAuth(t *testing.T) {
	router, _ := newTestRouter(t, adminConfig)

	rec := doRequest(t, router, http.MethodGet, "/admin/messages", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/admin/messages", "", bearer("wrong"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/admin/messages", "", bearer(testPassword))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"messages":[],"total":0,"unread":0}`, rec.Body.String())
}

func TestAdminProfile(t *testing.T) {
	router, db := newTestRouter(t, adminConfig)
	auth := bearer(testPassword)

	rec := doRequest(t, router, http.MethodGet, "/admin/profile", "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodPut, "/admin/profile", `{"name":""}`, auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	for _, name := range []string{"Jane", "Jane Doe"} {
		rec = doRequest(t, router, http.MethodPut, "/admin/profile", fmt.Sprintf(`{"name":%q,"email":"jane@example.com"}`, name), auth)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	n, err := db.ProfileRepo().Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	rec = doRequest(t, router, http.MethodGet, "/admin/profile", "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, models.DefaultCupsOfCoffee, profile.CupsOfCoffee)
}

func TestAdminProjectLifecycle(t *testing.T) {
	router, db := newTestRouter(t, adminConfig)
	auth := bearer(testPassword)

	rec := doRequest(t, router, http.MethodPost, "/admin/projects",
		`{"title":"Site","image":"projects/site.png","tags":["Go","Go","SQL"]}`, auth)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created ProjectWithTags
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, created.Project.IsActive)
	assert.Equal(t, []string{"Go", "SQL"}, created.Tags)
	id := created.Project.ID

	rec = doRequest(t, router, http.MethodGet, "/api/portfolio", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"image":"/media/projects/site.png"`)

	// no tags key keeps the existing tags
	rec = doRequest(t, router, http.MethodPut, fmt.Sprintf("/admin/projects/%d", id), `{"title":"Site v2","order":3}`, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated ProjectWithTags
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Site v2", updated.Project.Title)
	assert.Equal(t, []string{"Go", "SQL"}, updated.Tags)

	rec = doRequest(t, router, http.MethodPut, fmt.Sprintf("/admin/projects/%d", id), `{"title":"Site v2","tags":["Rust"]}`, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, []string{"Rust"}, updated.Tags)

	rec = doRequest(t, router, http.MethodPatch, fmt.Sprintf("/admin/projects/%d", id), `{"is_active":false}`, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.False(t, updated.Project.IsActive)
	assert.Equal(t, []string{"Rust"}, updated.Tags)

	rec = doRequest(t, router, http.MethodGet, "/api/portfolio", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"projects":[]`)

	rec = doRequest(t, router, http.MethodPut, fmt.Sprintf("/admin/projects/%d", id), `{"title":"x","bogus":1}`, auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/projects/%d", id), "", auth)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/projects/%d", id), "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	names, err := db.ProjectTagRepo().DistinctNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestAdminMessages(t *testing.T) {
	router, db := newTestRouter(t, adminConfig)
	auth := bearer(testPassword)
	ctx := context.Background()

	msg := models.ContactMessage{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	require.NoError(t, db.ContactMessageRepo().Create(ctx, &msg))

	rec := doRequest(t, router, http.MethodPatch, fmt.Sprintf("/admin/messages/%d", msg.ID), `{}`, auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPatch, fmt.Sprintf("/admin/messages/%d", msg.ID), `{"is_read":true}`, auth)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	unread, err := db.ContactMessageRepo().CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, unread)

	rec = doRequest(t, router, http.MethodPatch, "/admin/messages/999", `{"is_read":true}`, auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/admin/messages/abc", "", auth)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/messages/%d", msg.ID), "", auth)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminDeleteCategories(t *testing.T) {
	router, db := newTestRouter(t, adminConfig)
	auth := bearer(testPassword)
	ctx := context.Background()

	skills := models.SkillCategory{Name: "Tools", IsActive: true}
	require.NoError(t, db.SkillRepo().AddCategory(ctx, &skills))
	certs := models.CertificateCategory{Name: "Cloud", IsActive: true}
	require.NoError(t, db.CertificateRepo().AddCategory(ctx, &certs))

	rec := doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/skill-categories/%d", skills.ID), "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/certificate-categories/%d", certs.ID), "", auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodDelete, fmt.Sprintf("/admin/certificate-categories/%d", certs.ID), "", auth)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
