// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

package swcache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/utils"
)

// namespacePrefix marks every generation directory owned by this cache.
// Activation only ever deletes directories carrying this prefix, so foreign
// data under the same cache root is never touched.
const namespacePrefix = "faithdive-"

var (
	ErrUnknownMessage = errors.New("unknown message type")
	ErrInstall        = errors.New("install failed")
)

// DefaultManifest lists the application shell assets staged on install.
// Relative paths are resolved against the server base URL; absolute URLs
// name whitelisted cross-origin runtime assets.
var DefaultManifest = []string{
	"/",
	"/index.html",
	"/css/style.css",
	"/js/app.js",
	"/js/database.js",
	"/js/favorites.js",
	"/js/journal.js",
	"/js/bibleSearch.js",
	"/js/theme.js",
	"/manifest.json",
}

// Options configures a [Manager].
type Options struct {
	// Version names the cache generation; the generation directory is
	// "faithdive-v" + Version. It must match the version stamped on asset
	// URLs at deploy time; the manager does not verify that at runtime.
	Version string

	// CacheDir is the root under which generation directories live.
	CacheDir string

	// ServerURL is the application origin. Relative manifest paths resolve
	// against it, and same-origin requests are the ones eligible for caching.
	ServerURL string

	// Manifest is the asset list staged on install. Empty means
	// DefaultManifest.
	Manifest []string

	// RuntimeHost is the one cross-origin host fragment whose assets are
	// cached at fetch time instead of passed through.
	RuntimeHost string

	// RequestTimeout bounds every network fetch the manager performs.
	RequestTimeout time.Duration

	// OnClaim, when set, is called at the end of a successful activation,
	// mirroring a service worker claiming its clients.
	OnClaim func()
}

// Manager is the on-disk offline cache. All methods are safe for concurrent
// use; entry writes go through temp-and-rename so a crashed write never
// leaves a truncated entry behind.
type Manager struct {
	version     string
	cacheRoot   string
	serverURL   *url.URL
	manifest    []string
	runtimeHost string
	onClaim     func()

	client *utils.HTTPClient
	logger *logger.Logger

	mu sync.Mutex

	// revalidations tracks in-flight background refreshes so Close can
	// drain them.
	revalidations sync.WaitGroup
}

func NewManager(opts Options, log *logger.Logger) (*Manager, error) {
	if opts.Version == "" {
		return nil, fmt.Errorf("swcache: version is required")
	}
	if opts.CacheDir == "" {
		return nil, fmt.Errorf("swcache: cache dir is required")
	}

	base, err := url.Parse(strings.TrimRight(opts.ServerURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("swcache: invalid server url %q", opts.ServerURL)
	}

	manifest := opts.Manifest
	if len(manifest) == 0 {
		manifest = DefaultManifest
	}

	client := utils.NewHTTPClient()
	if opts.RequestTimeout > 0 {
		client.SetTimeout(opts.RequestTimeout)
	}

	return &Manager{
		version:     opts.Version,
		cacheRoot:   opts.CacheDir,
		serverURL:   base,
		manifest:    manifest,
		runtimeHost: opts.RuntimeHost,
		onClaim:     opts.OnClaim,
		client:      client,
		logger:      log,
	}, nil
}

// Version returns the version string this manager was built with.
func (m *Manager) Version() string {
	return m.version
}

func (m *Manager) generationName() string {
	return namespacePrefix + "v" + m.version
}

func (m *Manager) generationDir() string {
	return filepath.Join(m.cacheRoot, m.generationName())
}

// Install fetches every manifest asset and stages a complete new generation.
// Staging is all-or-nothing: a single failed fetch (network error or non-200
// status) aborts the install, removes the partial staging directory, and
// leaves any previously installed generation untouched.
func (m *Manager) Install(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	staging := m.generationDir() + ".staging"
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("%w: clear staging: %v", ErrInstall, err)
	}
	if err := os.MkdirAll(staging, 0o700); err != nil {
		return fmt.Errorf("%w: create staging: %v", ErrInstall, err)
	}

	for _, asset := range m.manifest {
		target, err := m.resolve(asset)
		if err != nil {
			os.RemoveAll(staging)
			return fmt.Errorf("%w: resolve %q: %v", ErrInstall, asset, err)
		}

		entry, err := m.fetchNetwork(ctx, target)
		if err != nil {
			os.RemoveAll(staging)
			return fmt.Errorf("%w: fetch %q: %v", ErrInstall, target, err)
		}
		if entry.Status != 200 {
			os.RemoveAll(staging)
			return fmt.Errorf("%w: fetch %q: status %d", ErrInstall, target, entry.Status)
		}

		if err := writeEntry(staging, entry); err != nil {
			os.RemoveAll(staging)
			return fmt.Errorf("%w: %v", ErrInstall, err)
		}
	}

	if err := os.RemoveAll(m.generationDir()); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("%w: replace generation: %v", ErrInstall, err)
	}
	if err := os.Rename(staging, m.generationDir()); err != nil {
		os.RemoveAll(staging)
		return fmt.Errorf("%w: publish generation: %v", ErrInstall, err)
	}

	m.logger.Info().Str("generation", m.generationName()).Msg("cache generation installed")
	return nil
}

// Activate deletes every generation in the faithdive- namespace other than
// the current one, then claims clients via the OnClaim callback. Directories
// outside the namespace are left alone.
func (m *Manager) Activate(ctx context.Context) error {
	m.mu.Lock()

	entries, err := os.ReadDir(m.cacheRoot)
	if err != nil && !os.IsNotExist(err) {
		m.mu.Unlock()
		return fmt.Errorf("activate: read cache root: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() || !strings.HasPrefix(name, namespacePrefix) || name == m.generationName() {
			continue
		}
		if err := os.RemoveAll(filepath.Join(m.cacheRoot, name)); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("activate: delete old generation %q: %w", name, err)
		}
		m.logger.Info().Str("generation", name).Msg("old cache generation deleted")
	}
	m.mu.Unlock()

	if m.onClaim != nil {
		m.onClaim()
	}

	return nil
}

// Fetch answers one asset request. API paths and foreign origins (other than
// the whitelisted runtime host) are passed straight to the network and never
// cached. Cached assets are returned immediately with a background
// revalidation; uncached ones come from the network and are stored on a 200.
// A network failure with no cached copy propagates to the caller.
func (m *Manager) Fetch(ctx context.Context, rawURL string) (Entry, error) {
	target, err := m.resolve(rawURL)
	if err != nil {
		return Entry{}, fmt.Errorf("fetch: resolve %q: %w", rawURL, err)
	}

	if m.passthrough(target) {
		return m.fetchNetwork(ctx, target)
	}

	key := target.String()
	cached, ok, err := m.readCached(key)
	if err != nil {
		m.logger.Err(err).Str("url", key).Msg("cache read failed, falling back to network")
	}
	if ok {
		m.revalidateInBackground(key)
		return cached, nil
	}

	entry, err := m.fetchNetwork(ctx, target)
	if err != nil {
		return Entry{}, err
	}
	if entry.Status == 200 {
		m.storeCached(entry)
	}

	return entry, nil
}

// Close waits for in-flight background revalidations to finish.
func (m *Manager) Close() {
	m.revalidations.Wait()
}

// passthrough reports whether a request must bypass the cache entirely.
func (m *Manager) passthrough(target *url.URL) bool {
	if strings.HasPrefix(target.Path, "/api/") {
		return true
	}
	if target.Host == m.serverURL.Host {
		return false
	}
	return m.runtimeHost == "" || !strings.Contains(target.Hostname(), m.runtimeHost)
}

func (m *Manager) resolve(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Host == "" {
		return m.serverURL.ResolveReference(u), nil
	}
	return u, nil
}

func (m *Manager) fetchNetwork(ctx context.Context, target *url.URL) (Entry, error) {
	resp, err := m.client.R().SetContext(ctx).Get(target.String())
	if err != nil {
		return Entry{}, fmt.Errorf("network fetch %q: %w", target, err)
	}

	return Entry{
		URL:         target.String(),
		Status:      resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        resp.Body(),
		FetchedAt:   time.Now().UTC(),
	}, nil
}

func (m *Manager) readCached(key string) (Entry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return readEntry(m.generationDir(), key)
}

func (m *Manager) storeCached(entry Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.generationDir(), 0o700); err != nil {
		m.logger.Err(err).Msg("cache store failed")
		return
	}
	if err := writeEntry(m.generationDir(), entry); err != nil {
		m.logger.Err(err).Str("url", entry.URL).Msg("cache store failed")
	}
}

// revalidateInBackground refreshes one cached entry from the network.
// Failures are swallowed: the cached copy stays good, and only a fresh 200
// may overwrite it.
func (m *Manager) revalidateInBackground(key string) {
	m.revalidations.Add(1)
	go func() {
		defer m.revalidations.Done()

		target, err := url.Parse(key)
		if err != nil {
			return
		}

		entry, err := m.fetchNetwork(context.Background(), target)
		if err != nil || entry.Status != 200 {
			return
		}

		m.storeCached(entry)
	}()
}
