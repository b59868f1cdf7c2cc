package http

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithdive/faith-dive/internal/adapter"
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/service"
	"github.com/faithdive/faith-dive/models"
)

// fakeBibleService stubs the service layer; each error field, when set,
// overrides the canned response.
type fakeBibleService struct {
	verse        models.Verse
	verseErr     error
	search       models.SearchResponse
	searchErr    error
	translations []models.Translation
	listErr      error
}

func (f *fakeBibleService) GetVerse(_ context.Context, reference, translationID string) (models.Verse, error) {
	if translationID == "" {
		return models.Verse{}, service.ErrMissingTranslationID
	}
	if f.verseErr != nil {
		return models.Verse{}, f.verseErr
	}
	return f.verse, nil
}

func (f *fakeBibleService) Search(_ context.Context, query, translationID string, limit int) (models.SearchResponse, error) {
	if query == "" {
		return models.SearchResponse{}, service.ErrMissingQuery
	}
	if translationID == "" {
		return models.SearchResponse{}, service.ErrMissingTranslationID
	}
	if f.searchErr != nil {
		return models.SearchResponse{}, f.searchErr
	}
	return f.search, nil
}

func (f *fakeBibleService) ListTranslations(_ context.Context) ([]models.Translation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.translations, nil
}

type fakeAppInfo struct{ version string }

func (f *fakeAppInfo) GetAppVersion(_ context.Context) string { return f.version }

func newTestHandler(t *testing.T, bible *fakeBibleService) *Handler {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>faith dive</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "app.js"), []byte("console.log('app')"), 0o644))

	services := &service.Services{
		BibleService:   bible,
		AppInfoService: &fakeAppInfo{version: "1.0.1"},
	}

	return NewHandler(services, staticDir, logger.Nop())
}

func doRequest(t *testing.T, h *Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	rec := doRequest(t, h, http.MethodGet, "/api/health")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "Faith Dive API", body["service"])
}

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	rec := doRequest(t, h, http.MethodGet, "/api/version")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.0.1", rec.Body.String())
}

func TestGetTranslations_Success(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{translations: []models.Translation{
		{ID: "de4e12af7f28f599-02", Name: "King James Version", Abbreviation: "KJV"},
	}})

	rec := doRequest(t, h, http.MethodGet, "/api/bible/translations")

	require.Equal(t, http.StatusOK, rec.Code)

	var translations []models.Translation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &translations))
	require.Len(t, translations, 1)
	assert.Equal(t, "KJV", translations[0].Abbreviation)
}

func TestGetTranslations_EmptyUpstreamAnswers503(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{listErr: service.ErrNoTranslations})

	rec := doRequest(t, h, http.MethodGet, "/api/bible/translations")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unable to fetch translations", body["error"])
}

func TestGetVerse_Success(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{verse: models.Verse{
		Reference: "John 3:16", Text: "For God so loved...", Translation: "kjv-id",
	}})

	rec := doRequest(t, h, http.MethodGet, "/api/bible/verse/John%203:16?bible_id=kjv-id")

	require.Equal(t, http.StatusOK, rec.Code)

	var verse models.Verse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verse))
	assert.Equal(t, "John 3:16", verse.Reference)
}

func TestGetVerse_MissingTranslationID(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	rec := doRequest(t, h, http.MethodGet, "/api/bible/verse/John%203:16")

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "bible_id query parameter is required", body["error"])
}

func TestGetVerse_NotFound(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{verseErr: adapter.ErrVerseNotFound})

	rec := doRequest(t, h, http.MethodGet, "/api/bible/verse/Nowhere%201:1?bible_id=kjv-id")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Verse 'Nowhere 1:1' not found", body["error"])
}

func TestSearch_Success(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{search: models.SearchResponse{
		Verses: []models.Verse{{Reference: "John 3:16", Text: "For God so loved..."}},
		Total:  1,
	}})

	rec := doRequest(t, h, http.MethodGet, "/api/bible/search?q=love&bible_id=kjv-id")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Total)
}

func TestSearch_MissingParameters(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	rec := doRequest(t, h, http.MethodGet, "/api/bible/search?bible_id=kjv-id")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, http.MethodGet, "/api/bible/search?q=love")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownAPIPathAnswersJSON404(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	rec := doRequest(t, h, http.MethodGet, "/api/no/such/route")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "API endpoint not found", body["error"])
}

func TestStatic_ServesExistingAsset(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	rec := doRequest(t, h, http.MethodGet, "/app.js")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log('app')", rec.Body.String())
}

func TestStatic_SPAFallbackForClientRoutes(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	for _, path := range []string{"/", "/journal", "/favorites/42"} {
		rec := doRequest(t, h, http.MethodGet, path)

		require.Equal(t, http.StatusOK, rec.Code, "path %s", path)
		assert.Contains(t, rec.Body.String(), "faith dive", "path %s", path)
	}
}

func TestTraceIDHeaderSetOnResponses(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	rec := doRequest(t, h, http.MethodGet, "/api/health")
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestTraceIDHeaderEchoedFromRequest(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(traceIDHeader, "incoming-trace")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "incoming-trace", rec.Header().Get(traceIDHeader))
}

func TestGZipResponseWhenAccepted(t *testing.T) {
	h := newTestHandler(t, &fakeBibleService{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	defer gz.Close()

	plain, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Contains(t, string(plain), "healthy")
}
