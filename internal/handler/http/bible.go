package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/utils"
)

// getTranslations handles GET /api/bible/translations. An empty upstream
// catalogue answers 503 so the client can tell "provider down" from "no
// such endpoint".
func (h *Handler) getTranslations(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	translations, err := h.services.BibleService.ListTranslations(r.Context())
	if err != nil {
		log.Err(err).Str("func", "getTranslations").Msg("list translations failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, translations, http.StatusOK) //nolint:errcheck
}

// getVerse handles GET /api/bible/verse/{reference}?bible_id=...
func (h *Handler) getVerse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// chi hands back the raw path segment when the URL carried escapes
	reference := chi.URLParam(r, "reference")
	if decoded, err := url.PathUnescape(reference); err == nil {
		reference = decoded
	}
	translationID := r.URL.Query().Get("bible_id")

	verse, err := h.services.BibleService.GetVerse(r.Context(), reference, translationID)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			utils.WriteJSONError(w, fmt.Sprintf("Verse '%s' not found", reference), status)
			return
		}
		log.Err(err).Str("func", "getVerse").Str("reference", reference).Msg("get verse failed")
		utils.WriteJSONError(w, messageFromError(err), status)
		return
	}

	utils.WriteJSON(w, verse, http.StatusOK) //nolint:errcheck
}

// searchVerses handles GET /api/bible/search?q=...&bible_id=...&limit=...
func (h *Handler) searchVerses(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")
	translationID := r.URL.Query().Get("bible_id")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.services.BibleService.Search(r.Context(), query, translationID, limit)
	if err != nil {
		log.Err(err).Str("func", "searchVerses").Str("query", query).Msg("search failed")
		utils.WriteJSONError(w, messageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK) //nolint:errcheck
}
