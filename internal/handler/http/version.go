package http

import (
	"net/http"
)

// getServerVersion answers the plain-text version string the client's
// update checker polls.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(version)) //nolint:errcheck
}
