package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yifan996/Itinerary/internal/api/controllers"
	"github.com/yifan996/Itinerary/internal/config"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>TripMate</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	cfg := &config.Config{}
	cfg.HTTP.StaticDir = dir
	cfg.HTTP.GinMode = gin.TestMode

	return ProvideRouter(RouterParams{
		Config:              cfg,
		Logger:              zap.NewNop(),
		ItineraryController: controllers.NewItineraryController(nil),
		ProfileController:   controllers.NewProfileController(nil),
		SurveyController:    controllers.NewSurveyController(nil),
		ChatController:      controllers.NewChatController(nil),
	})
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestRouter_Health(t *testing.T) {
	w := serve(newTestEngine(t), http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}

func TestRouter_StaticFiles(t *testing.T) {
	r := newTestEngine(t)

	w := serve(r, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "TripMate")

	w = serve(r, http.MethodGet, "/app.js")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(r, http.MethodGet, "/missing.css")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UnknownAPIPath(t *testing.T) {
	w := serve(newTestEngine(t), http.MethodGet, "/api/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Not found"`)
}

func TestRouter_SwaggerDoc(t *testing.T) {
	w := serve(newTestEngine(t), http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/generate-itinerary")
}

func TestRouter_NoDirectoryListing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "secret-draft.js"), []byte("x"), 0o644))

	cfg := &config.Config{}
	cfg.HTTP.StaticDir = dir
	r := ProvideRouter(RouterParams{
		Config:              cfg,
		Logger:              zap.NewNop(),
		ItineraryController: controllers.NewItineraryController(nil),
		ProfileController:   controllers.NewProfileController(nil),
		SurveyController:    controllers.NewSurveyController(nil),
		ChatController:      controllers.NewChatController(nil),
	})

	for _, p := range []string{"/assets/", "/assets", "/"} {
		w := serve(r, http.MethodGet, p)
		assert.Equal(t, http.StatusNotFound, w.Code, p)
		assert.NotContains(t, w.Body.String(), "secret-draft.js", p)
		assert.NotContains(t, w.Body.String(), "assets", p)
	}

	w := serve(r, http.MethodGet, "/assets/secret-draft.js")
	assert.Equal(t, http.StatusOK, w.Code)
}
