package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// serveStatic serves the application shell assets. Requests that resolve to
// an existing file under the static directory are served as-is; everything
// else falls back to index.html so client-side routes survive a hard reload.
// Path traversal is neutralised by resolving through filepath.Clean relative
// to the static root.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	rel := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	if rel == "" {
		rel = "index.html"
	}

	candidate := filepath.Join(h.staticDir, rel)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		http.ServeFile(w, r, candidate)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.staticDir, "index.html"))
}
