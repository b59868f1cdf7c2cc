// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for faith-dive.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds the local persistence settings: the durable image
	// slot and the offline asset cache root.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and static asset settings
	// for the proxy server.
	Server Server `envPrefix:"SERVER_"`

	// BibleAPI holds credentials and endpoint settings for the upstream
	// scripture API.
	BibleAPI BibleAPI `envPrefix:"BIBLE_API_"`

	// Client holds settings used only by the on-device client binary.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the application version string (e.g. "1.0.1"). It names
	// the current cache generation and is exposed via /api/version, so it
	// must match the version stamped on asset URLs by the shell; a
	// mismatch means stale code is served against another generation.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds local persistence settings for the client data layer.
type Storage struct {
	// ImagePath is the durable slot file that holds the serialized
	// database image.
	// Env: STORAGE_IMAGE_PATH
	ImagePath string `env:"IMAGE_PATH"`

	// ImageQuotaBytes caps the size of the durable image; a flush above
	// the cap fails with a quota error. Zero disables the cap.
	// Env: STORAGE_IMAGE_QUOTA_BYTES
	ImageQuotaBytes int64 `env:"IMAGE_QUOTA_BYTES"`

	// CacheDir is the root directory under which the offline cache
	// manager keeps its versioned asset generations.
	// Env: STORAGE_CACHE_DIR
	CacheDir string `env:"CACHE_DIR"`
}

// Server holds network settings for the proxy server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is the directory holding the application shell assets
	// served for non-API paths.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// BibleAPI holds upstream scripture API settings.
type BibleAPI struct {
	// Key is the api-key header value sent with every upstream request.
	// Env: BIBLE_API_KEY
	Key string `env:"KEY"`

	// BaseURL is the upstream API root
	// (e.g. "https://api.scripture.api.bible/v1").
	// Env: BIBLE_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound upstream request.
	// Env: BIBLE_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds settings used only by the on-device client binary.
type Client struct {
	// ServerURL is the base URL of the proxy server the client talks to.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// UpdateCheckInterval defines how often the background worker polls
	// the server for a new application version.
	// Env: CLIENT_UPDATE_CHECK_INTERVAL
	UpdateCheckInterval time.Duration `env:"UPDATE_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
