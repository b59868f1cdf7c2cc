package http

import (
	"net/http"

	"github.com/faithdive/faith-dive/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{ //nolint:errcheck
		"status":  "healthy",
		"service": "Faith Dive API",
	}, http.StatusOK)
}
