package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/database"
	"github.com/rpupo63/portfolio-site-backend/database/testutil"
	"github.com/rpupo63/portfolio-site-backend/services"
	"github.com/rpupo63/portfolio-site-backend/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "s3cret"

type failingNotifier struct{}

func (failingNotifier) Channel() string { return "email" }

func (failingNotifier) Notify(context.Context, services.ContactNotification) error {
	return errors.New("smtp down")
}

func testServices(db database.Database) Services {
	resolver := services.NewMediaResolver(storage.NewPublicBase("/media/"))
	return Services{
		Portfolio: services.NewPortfolioService(db, resolver),
		Contact: services.NewContactService(
			db.ContactMessageRepo(),
			db.ProfileRepo(),
			[]services.Notifier{failingNotifier{}},
			"owner@example.com",
			time.Second,
		),
	}
}

func newTestRouter(t *testing.T, cfg map[string]string) (*chi.Mux, database.Database) {
	t.Helper()
	db := testutil.New(t)
	return newRouter(db, testServices(db), withConfig(cfg)), db
}

func doRequest(t *testing.T, h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNewServerRequiresServices(t *testing.T) {
	_, err := NewServer(map[string]string{}, testutil.New(t), Services{})
	assert.Error(t, err)
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	db := testutil.New(t)
	server, err := NewServer(map[string]string{"PORT": "0"}, db, testServices(db))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, server)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRunReturnsListenError(t *testing.T) {
	db := testutil.New(t)
	server, err := NewServer(map[string]string{"PORT": "-1"}, db, testServices(db))
	require.NoError(t, err)

	select {
	case err := <-runAsync(context.Background(), server):
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not report the listen error")
	}
}

func runAsync(ctx context.Context, server Server) <-chan error {
	done := make(chan error, 1)
	go func() { done <- server.Run(ctx, time.Second) }()
	return done
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestHomeRendersOnEmptyStore(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<title>Portfolio</title>")
	assert.Contains(t, rec.Body.String(), "1000")
}

func TestPortfolioDocumentOnEmptyStore(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	for _, path := range []string{"/api/portfolio", "/api/portfolio/"} {
		rec := doRequest(t, router, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"profile":null,"skills":[],"projects":[],"achievements":[],"certificates":[],"gallery":[]}`, rec.Body.String())
	}
}

func TestRequestIDIsEchoed(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", map[string]string{requestIDHeader: "req-42"})
	assert.Equal(t, "req-42", rec.Header().Get(requestIDHeader))
}

func TestCORSPreflightFromUnknownOrigin(t *testing.T) {
	router, _ := newTestRouter(t, map[string]string{"ACCEPTED_ORIGINS": "https://site.example.com"})

	rec := doRequest(t, router, http.MethodOptions, "/send-message/", "", map[string]string{
		"Origin":                        "https://evil.example.com",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/portfolio", "", map[string]string{"Origin": "https://site.example.com"})
	assert.Equal(t, "https://site.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
