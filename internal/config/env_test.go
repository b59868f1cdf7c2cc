// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "2.3.4",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_STATIC_DIR":      "/srv/public",

		"STORAGE_IMAGE_PATH":        "/var/data/faithdive.db.img",
		"STORAGE_IMAGE_QUOTA_BYTES": "5242880",
		"STORAGE_CACHE_DIR":         "/var/cache/faithdive",

		"BIBLE_API_KEY":      "secret",
		"BIBLE_API_BASE_URL": "https://api.example.test/v1",

		"CLIENT_SERVER_URL":            "http://localhost:9000",
		"CLIENT_UPDATE_CHECK_INTERVAL": "1m",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "2.3.4", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "/srv/public", cfg.Server.StaticDir)

	assert.Equal(t, "/var/data/faithdive.db.img", cfg.Storage.ImagePath)
	assert.Equal(t, int64(5242880), cfg.Storage.ImageQuotaBytes)
	assert.Equal(t, "/var/cache/faithdive", cfg.Storage.CacheDir)

	assert.Equal(t, "secret", cfg.BibleAPI.Key)
	assert.Equal(t, "https://api.example.test/v1", cfg.BibleAPI.BaseURL)

	assert.Equal(t, "http://localhost:9000", cfg.Client.ServerURL)
	assert.Equal(t, time.Minute, cfg.Client.UpdateCheckInterval)
}

func TestParseEnv_PartialFields(t *testing.T) {
	envVars := map[string]string{
		"SERVER_ADDRESS": "localhost:8080",
	}
	setEnvVars(t, envVars)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.BibleAPI.Key)
	assert.Zero(t, cfg.Storage.ImageQuotaBytes)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultImagePath, cfg.Storage.ImagePath)
	assert.Equal(t, defaultCacheDir, cfg.Storage.CacheDir)
	assert.Equal(t, defaultBibleAPIURL, cfg.BibleAPI.BaseURL)
	assert.Equal(t, defaultVersion, cfg.App.Version)
}

func TestValidate_NegativeQuota(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()
	cfg.Storage.ImageQuotaBytes = -1

	err := cfg.validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
