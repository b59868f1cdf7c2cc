package workers

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/utils"
)

// UpdateChecker polls the server's version endpoint and reports when the
// served version differs from the one this process was built with. The
// offline cache uses the signal to install and activate a fresh generation.
type UpdateChecker struct {
	currentVersion string
	client         *utils.HTTPClient
	interval       time.Duration

	// OnUpdate is called once per poll that observes a version different
	// from currentVersion, with the new version string.
	onUpdate func(newVersion string)

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewUpdateChecker builds a checker polling serverURL's /api/version every
// interval. A non-positive interval defaults to 5 minutes. The checker is
// idle until Start is called.
func NewUpdateChecker(serverURL, currentVersion string, interval time.Duration, onUpdate func(string), log *logger.Logger) *UpdateChecker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	client := utils.NewHTTPClient()
	client.SetBaseURL(strings.TrimRight(serverURL, "/"))

	return &UpdateChecker{
		currentVersion: currentVersion,
		client:         client,
		interval:       interval,
		onUpdate:       onUpdate,
		logger:         log,
	}
}

// Run implements [Worker]. It starts the checker with a background context.
func (u *UpdateChecker) Run() {
	u.Start(context.Background())
}

// Start stops any previously running poll loop, then launches a background
// goroutine that checks the server version every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (u *UpdateChecker) Start(ctx context.Context) {
	u.Stop()

	u.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	u.cancel = cancel
	u.wg.Add(1)
	u.mu.Unlock()

	go func() {
		defer u.wg.Done()
		t := time.NewTicker(u.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				u.checkOnce(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the checker is not running.
func (u *UpdateChecker) Stop() {
	u.mu.Lock()
	cancel := u.cancel
	u.cancel = nil
	u.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	u.wg.Wait()
}

// checkOnce performs one poll. Transport failures are logged and otherwise
// ignored; the next tick tries again.
func (u *UpdateChecker) checkOnce(ctx context.Context) {
	resp, err := u.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		u.logger.Debug().Err(err).Msg("version check failed")
		return
	}
	if resp.StatusCode() != 200 {
		u.logger.Debug().Int("status", resp.StatusCode()).Msg("version check failed")
		return
	}

	served := strings.TrimSpace(string(resp.Body()))
	if served == "" || served == u.currentVersion {
		return
	}

	u.logger.Info().
		Str("current", u.currentVersion).
		Str("served", served).
		Msg("new application version available")

	if u.onUpdate != nil {
		u.onUpdate(served)
	}
}
