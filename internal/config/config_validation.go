package config

import (
	"fmt"
	"time"
)

// Built-in fallbacks applied after all sources are merged.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 15 * time.Second
	defaultStaticDir      = "public"
	defaultImagePath      = "faithdive.db.img"
	defaultCacheDir       = "faithdive-cache"
	defaultBibleAPIURL    = "https://api.scripture.api.bible/v1"
	defaultServerURL      = "http://localhost:8080"
	defaultUpdateInterval = 5 * time.Minute
	defaultVersion        = "1.0.1"
)

func (c *StructuredConfig) applyDefaults() {
	if c.App.Version == "" {
		c.App.Version = defaultVersion
	}
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = defaultStaticDir
	}
	if c.Storage.ImagePath == "" {
		c.Storage.ImagePath = defaultImagePath
	}
	if c.Storage.CacheDir == "" {
		c.Storage.CacheDir = defaultCacheDir
	}
	if c.BibleAPI.BaseURL == "" {
		c.BibleAPI.BaseURL = defaultBibleAPIURL
	}
	if c.BibleAPI.RequestTimeout <= 0 {
		c.BibleAPI.RequestTimeout = defaultRequestTimeout
	}
	if c.Client.ServerURL == "" {
		c.Client.ServerURL = defaultServerURL
	}
	if c.Client.UpdateCheckInterval <= 0 {
		c.Client.UpdateCheckInterval = defaultUpdateInterval
	}
}

func (c *StructuredConfig) validate() error {
	if c.Storage.ImageQuotaBytes < 0 {
		return fmt.Errorf("%w: image quota must not be negative", ErrInvalidConfig)
	}

	return nil
}
