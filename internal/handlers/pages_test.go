package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shazarali/portfolio/internal/analytics"
	"github.com/shazarali/portfolio/internal/content"
	"github.com/shazarali/portfolio/internal/theme"
)

func newTestRouter(t *testing.T) (*gin.Engine, *analytics.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := analytics.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	pages := &Pages{
		Store: store,
		Now:   func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) },
	}
	r := gin.New()
	r.Use(RequestID(), theme.Middleware(theme.Dark))
	r.GET("/", pages.Home)
	r.GET("/healthz", Health)
	r.GET("/out/:target", pages.Outbound)
	return r, store
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHomePage(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `data-active="home"`)
	assert.Contains(t, w.Body.String(), "© 2026")
}

func TestHomePageSectionQuery(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Contains(t, get(r, "/?section=education").Body.String(), `data-active="education"`)
	assert.Contains(t, get(r, "/?section=nope").Body.String(), `data-active="home"`)
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := get(r, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestOutboundRedirectsAndCounts(t *testing.T) {
	r, store := newTestRouter(t)

	w := get(r, "/out/linkedin")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, content.ContactInfo.LinkedInURL, w.Header().Get("Location"))

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalClicks)

	assert.Equal(t, http.StatusNotFound, get(r, "/out/myspace").Code)
}

func TestRequestID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := get(r, "/healthz")
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, id)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get(RequestIDHeader))
}
