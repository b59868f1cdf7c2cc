// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/logger"
)

func newTestAPI(t *testing.T, serverURL string) *httpBibleAPI {
	t.Helper()

	cfg := config.BibleAPI{
		Key:            "test-api-key",
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	}

	api, err := NewHTTPBibleAPI(cfg, logger.Nop())
	require.NoError(t, err)
	return api.(*httpBibleAPI)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"full url kept", "https://api.scripture.api.bible/v1", "https://api.scripture.api.bible/v1", false},
		{"scheme added", "api.example.test/v1", "https://api.example.test/v1", false},
		{"trailing slash trimmed", "https://api.example.test/v1/", "https://api.example.test/v1", false},
		{"empty rejected", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetVerse_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bibles/de4e12af7f28f599-02/passages/John 3:16", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("api-key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"reference":"John 3:16","content":"For God so loved the world..."}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	verse, err := api.GetVerse(context.Background(), "John 3:16", "de4e12af7f28f599-02")

	require.NoError(t, err)
	assert.Equal(t, "John 3:16", verse.Reference)
	assert.Equal(t, "For God so loved the world...", verse.Text)
	assert.Equal(t, "de4e12af7f28f599-02", verse.Translation)
}

func TestGetVerse_EchoesReferenceWhenUpstreamOmitsIt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"content":"text only"}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	verse, err := api.GetVerse(context.Background(), "Psalm 23:1", "kjv-id")

	require.NoError(t, err)
	assert.Equal(t, "Psalm 23:1", verse.Reference)
}

func TestGetVerse_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("passage not found"))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.GetVerse(context.Background(), "Nowhere 1:1", "kjv-id")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerseNotFound)
}

func TestGetVerse_RejectedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.GetVerse(context.Background(), "John 3:16", "kjv-id")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSearch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bibles/kjv-id/search", r.URL.Path)
		assert.Equal(t, "love", r.URL.Query().Get("query"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"verses":[
			{"reference":"John 3:16","text":"For God so loved..."},
			{"reference":"1 John 4:8","text":"God is love."}
		]}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	verses, err := api.Search(context.Background(), "love", "kjv-id", 10)

	require.NoError(t, err)
	require.Len(t, verses, 2)
	assert.Equal(t, "John 3:16", verses[0].Reference)
	assert.Equal(t, "kjv-id", verses[0].Translation)
	assert.Equal(t, "God is love.", verses[1].Text)
}

func TestSearch_NoMatchesIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"verses":[]}}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	verses, err := api.Search(context.Background(), "zzzz", "kjv-id", 10)

	require.NoError(t, err)
	assert.Empty(t, verses)
}

func TestListTranslations_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bibles", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"id":"de4e12af7f28f599-02","name":"King James Version","abbreviation":"KJV"},
			{"id":"06125adad2d5898a-01","name":"American Standard Version","abbreviation":"ASV"}
		]}`))
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	translations, err := api.ListTranslations(context.Background())

	require.NoError(t, err)
	require.Len(t, translations, 2)
	assert.Equal(t, "KJV", translations[0].Abbreviation)
	assert.Equal(t, "American Standard Version", translations[1].Name)
}

func TestListTranslations_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	api := newTestAPI(t, srv.URL)
	_, err := api.ListTranslations(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
}
