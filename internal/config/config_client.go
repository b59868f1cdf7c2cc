package config

import (
	"fmt"
	"time"
)

// ClientStorage groups the on-device persistence settings.
type ClientStorage struct {
	// ImagePath is the durable slot file holding the serialized database
	// image.
	ImagePath string
	// ImageQuotaBytes caps the durable image size; zero disables the cap.
	ImageQuotaBytes int64
	// CacheDir is the offline asset cache root.
	CacheDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the proxy server base URL.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// UpdateCheckInterval defines how often the update checker polls the
	// server version endpoint.
	UpdateCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is the application (and cache generation) version string.
	Version string
	// Storage contains on-device persistence settings.
	Storage ClientStorage
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds a client-specific config view from the merged
// structured configuration: it loads the base config via
// [GetStructuredConfig] and maps only the fields relevant to the client
// runtime.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ClientConfig{
		Version: cfg.App.Version,
		Storage: ClientStorage{
			ImagePath:       cfg.Storage.ImagePath,
			ImageQuotaBytes: cfg.Storage.ImageQuotaBytes,
			CacheDir:        cfg.Storage.CacheDir,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Client.ServerURL,
			RequestTimeout: cfg.BibleAPI.RequestTimeout,
		},
		Workers: ClientWorkers{
			UpdateCheckInterval: cfg.Client.UpdateCheckInterval,
		},
	}, nil
}
