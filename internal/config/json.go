package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and a
// string-friendly Duration type for fields like "30s".
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		ImagePath       string `json:"image_path"`
		ImageQuotaBytes int64  `json:"image_quota_bytes"`
		CacheDir        string `json:"cache_dir"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		StaticDir      string   `json:"static_dir"`
	} `json:"server,omitempty"`

	BibleAPI struct {
		Key            string   `json:"key"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"bible_api,omitempty"`

	Client struct {
		ServerURL           string   `json:"server_url"`
		UpdateCheckInterval Duration `json:"update_check_interval"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Storage: Storage{
			ImagePath:       jsonCfg.Storage.ImagePath,
			ImageQuotaBytes: jsonCfg.Storage.ImageQuotaBytes,
			CacheDir:        jsonCfg.Storage.CacheDir,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			StaticDir:      jsonCfg.Server.StaticDir,
		},
		BibleAPI: BibleAPI{
			Key:            jsonCfg.BibleAPI.Key,
			BaseURL:        jsonCfg.BibleAPI.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.BibleAPI.RequestTimeout),
		},
		Client: Client{
			ServerURL:           jsonCfg.Client.ServerURL,
			UpdateCheckInterval: time.Duration(jsonCfg.Client.UpdateCheckInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "1h", "30s" as well as plain nanosecond
// numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("error parsing duration %q: %w", value, err)
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}
