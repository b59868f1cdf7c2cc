package swcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is one cached asset response. Body is stored verbatim; only the
// metadata needed to replay the response is kept.
type Entry struct {
	URL         string    `json:"url"`
	Status      int       `json:"status"`
	ContentType string    `json:"content_type"`
	Body        []byte    `json:"body"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// entryFileName maps a URL to a stable file name inside a generation
// directory. Hashing sidesteps every path-separator and length problem a
// raw URL would bring onto the filesystem.
func entryFileName(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:]) + ".json"
}

func writeEntry(dir string, entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	path := filepath.Join(dir, entryFileName(entry.URL))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publish cache entry: %w", err)
	}

	return nil
}

func readEntry(dir, url string) (Entry, bool, error) {
	data, err := os.ReadFile(filepath.Join(dir, entryFileName(url)))
	if os.IsNotExist(err) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("read cache entry: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, false, fmt.Errorf("decode cache entry: %w", err)
	}

	return entry, true, nil
}
