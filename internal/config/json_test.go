package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	contents := `{
		"app": {"version": "2.0.0"},
		"storage": {"image_path": "/data/img", "image_quota_bytes": 1024, "cache_dir": "/data/cache"},
		"server": {"http_address": "localhost:7070", "request_timeout": "45s", "static_dir": "/srv/public"},
		"bible_api": {"key": "k", "base_url": "https://api.example.test/v1", "request_timeout": "10s"},
		"client": {"server_url": "http://localhost:7070", "update_check_interval": "2m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "/data/img", cfg.Storage.ImagePath)
	assert.Equal(t, int64(1024), cfg.Storage.ImageQuotaBytes)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://api.example.test/v1", cfg.BibleAPI.BaseURL)
	assert.Equal(t, 2*time.Minute, cfg.Client.UpdateCheckInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h"`)))
	assert.Equal(t, Duration(time.Hour), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	require.Error(t, d.UnmarshalJSON([]byte(`true`)))
	require.Error(t, d.UnmarshalJSON([]byte(`"bogus"`)))
}
