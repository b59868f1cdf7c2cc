package tui

import (
	"errors"
	"strings"

	"github.com/faithdive/faith-dive/internal/store"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "You appear to be offline. Saved journals and favorites are still available."
	}

	return err.Error()
}

// isQuotaFailure reports whether err means the write landed in memory but
// could not be flushed to the durable slot. The operation itself succeeded
// and the UI shows a warning banner instead of an error.
func isQuotaFailure(err error) bool {
	return errors.Is(err, store.ErrQuotaExceeded)
}
