package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/faithdive/faith-dive/internal/app"
	"github.com/faithdive/faith-dive/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(middleware.Recoverer)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)

		r.Route("/bible", func(r chi.Router) {
			r.Get("/translations", h.getTranslations)
			r.Get("/verse/{reference}", h.getVerse)
			r.Get("/search", h.searchVerses)
		})

		// unknown /api paths answer JSON, never the SPA shell
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			utils.WriteJSONError(w, app.MsgEndpointNotFound, http.StatusNotFound)
		})
	})

	router.NotFound(h.serveStatic)

	return router
}
