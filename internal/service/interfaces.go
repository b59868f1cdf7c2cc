package service

import (
	"context"

	"github.com/faithdive/faith-dive/models"
)

type BibleService interface {
	// GetVerse validates the request parameters and fetches one verse or
	// passage from the upstream provider. Returns ErrMissingReference or
	// ErrMissingTranslationID before any network call is made.
	GetVerse(ctx context.Context, reference, translationID string) (models.Verse, error)

	// Search validates the request parameters and performs a keyword
	// search. A non-positive limit falls back to the default of 10.
	Search(ctx context.Context, query, translationID string, limit int) (models.SearchResponse, error)

	// ListTranslations returns the upstream translation catalogue.
	// Returns ErrNoTranslations when the provider answers with an empty
	// list, so callers can distinguish "nothing to offer" from transport
	// failure.
	ListTranslations(ctx context.Context) ([]models.Translation, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
