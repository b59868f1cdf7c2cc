package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/utils"
	"github.com/faithdive/faith-dive/models"
)

// serverBibleAPI implements [BibleAPI] against the application's own proxy
// server instead of the upstream provider. The on-device client uses it so
// the upstream API key never leaves the server.
type serverBibleAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewServerBibleAPI constructs a [BibleAPI] talking to the proxy server's
// /api/bible endpoints.
func NewServerBibleAPI(cfg config.ClientAdapter, logger *logger.Logger) (BibleAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &serverBibleAPI{client: client, logger: logger}, nil
}

func (s *serverBibleAPI) GetVerse(ctx context.Context, reference, translationID string) (models.Verse, error) {
	var verse models.Verse

	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&verse).
		SetPathParam("reference", reference).
		SetQueryParam("bible_id", translationID).
		Get("/api/bible/verse/{reference}")
	if err != nil {
		return models.Verse{}, fmt.Errorf("get verse request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Verse{}, err
	}

	return verse, nil
}

func (s *serverBibleAPI) Search(ctx context.Context, query, translationID string, limit int) ([]models.Verse, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("q", query).
		SetQueryParam("bible_id", translationID).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/api/bible/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var sr models.SearchResponse
	if err = json.Unmarshal(resp.Body(), &sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return sr.Verses, nil
}

func (s *serverBibleAPI) ListTranslations(ctx context.Context) ([]models.Translation, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		Get("/api/bible/translations")
	if err != nil {
		return nil, fmt.Errorf("list translations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var translations []models.Translation
	if err = json.Unmarshal(resp.Body(), &translations); err != nil {
		return nil, fmt.Errorf("decode translations response: %w", err)
	}

	return translations, nil
}
