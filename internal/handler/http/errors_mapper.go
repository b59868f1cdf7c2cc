package http

import (
	"errors"
	"net/http"

	"github.com/faithdive/faith-dive/internal/adapter"
	"github.com/faithdive/faith-dive/internal/app"
	"github.com/faithdive/faith-dive/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrMissingReference:     http.StatusBadRequest,
	service.ErrMissingQuery:         http.StatusBadRequest,
	service.ErrMissingTranslationID: http.StatusBadRequest,

	service.ErrNoTranslations: http.StatusServiceUnavailable,

	adapter.ErrVerseNotFound: http.StatusNotFound,
	adapter.ErrUnauthorized:  http.StatusBadGateway,
	adapter.ErrUpstream:      http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError maps known sentinels to the exact client-facing message;
// everything else is reported as an opaque internal error so upstream
// details never leak into responses.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrMissingReference):
		return app.MsgMissingReference
	case errors.Is(err, service.ErrMissingQuery):
		return app.MsgMissingQuery
	case errors.Is(err, service.ErrMissingTranslationID):
		return app.MsgMissingTranslationID
	case errors.Is(err, service.ErrNoTranslations):
		return app.MsgNoTranslations
	default:
		return app.MsgInternalServerError
	}
}
