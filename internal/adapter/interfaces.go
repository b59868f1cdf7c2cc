// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

// Package adapter provides transport-layer abstractions for talking to the
// upstream scripture lookup API.
//
// The primary abstraction is [BibleAPI], which decouples the service layer
// from the upstream wire format. The package ships an HTTP/REST
// implementation ([NewHTTPBibleAPI]) for api.scripture.api.bible-shaped
// providers.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrVerseNotFound] for 404, [ErrUnauthorized] for a
// rejected API key).
package adapter

import (
	"context"

	"github.com/faithdive/faith-dive/models"
)

// BibleAPI defines read-only access to an upstream scripture provider.
// Implementations are responsible for serialisation, API-key header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type BibleAPI interface {
	// GetVerse fetches a single verse or passage by free-form reference
	// (e.g. "John 3:16") in the given translation. Returns
	// [ErrVerseNotFound] (wrapped) when the upstream provider has no
	// passage for the reference.
	GetVerse(ctx context.Context, reference, translationID string) (models.Verse, error)

	// Search performs a keyword search over the given translation and
	// returns up to limit verses. An empty result is not an error.
	Search(ctx context.Context, query, translationID string, limit int) ([]models.Verse, error)

	// ListTranslations returns every scripture edition the upstream
	// provider offers. An empty list with a nil error means the provider
	// answered but offers nothing usable.
	ListTranslations(ctx context.Context) ([]models.Translation, error)
}
