package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/internal/utils"
	"github.com/faithdive/faith-dive/models"
)

type httpBibleAPI struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// passageEnvelope and its siblings mirror the upstream wire format: every
// endpoint wraps its payload in a "data" field.
type passageEnvelope struct {
	Data struct {
		Reference string `json:"reference"`
		Content   string `json:"content"`
	} `json:"data"`
}

type searchEnvelope struct {
	Data struct {
		Verses []struct {
			Reference string `json:"reference"`
			Text      string `json:"text"`
		} `json:"verses"`
	} `json:"data"`
}

type biblesEnvelope struct {
	Data []struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Abbreviation string `json:"abbreviation"`
	} `json:"data"`
}

// NewHTTPBibleAPI constructs an HTTP/REST implementation of [BibleAPI].
// It normalises and validates the base URL from cfg.BaseURL, and configures
// the underlying HTTP client with the resolved base URL, the request timeout,
// and the api-key header attached to every outbound request.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPBibleAPI(cfg config.BibleAPI, logger *logger.Logger) (BibleAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bible api base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("api-key", cfg.Key).
		SetHeader("Accept", "application/json")

	return &httpBibleAPI{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetVerse implements [BibleAPI]. It GETs
// /bibles/{translationID}/passages/{reference} and maps the passage payload
// into a [models.Verse]. When the upstream reference field is empty the
// requested reference is echoed back, so callers always get a displayable
// label. Returns [ErrVerseNotFound] (wrapped) on upstream 404.
func (h *httpBibleAPI) GetVerse(ctx context.Context, reference, translationID string) (models.Verse, error) {
	var envelope passageEnvelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		SetPathParam("bibleId", translationID).
		SetPathParam("reference", reference).
		Get("/bibles/{bibleId}/passages/{reference}")
	if err != nil {
		return models.Verse{}, fmt.Errorf("get verse request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Verse{}, err
	}

	verse := models.Verse{
		Reference:   envelope.Data.Reference,
		Text:        envelope.Data.Content,
		Translation: translationID,
	}
	if verse.Reference == "" {
		verse.Reference = reference
	}

	return verse, nil
}

// Search implements [BibleAPI]. It GETs /bibles/{translationID}/search with
// the query and limit parameters and flattens the upstream verse list.
// An upstream response with no verses yields an empty slice, not an error.
func (h *httpBibleAPI) Search(ctx context.Context, query, translationID string, limit int) ([]models.Verse, error) {
	var envelope searchEnvelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		SetPathParam("bibleId", translationID).
		SetQueryParam("query", query).
		SetQueryParam("limit", strconv.Itoa(limit)).
		Get("/bibles/{bibleId}/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	verses := make([]models.Verse, 0, len(envelope.Data.Verses))
	for _, v := range envelope.Data.Verses {
		verses = append(verses, models.Verse{
			Reference:   v.Reference,
			Text:        v.Text,
			Translation: translationID,
		})
	}

	return verses, nil
}

// ListTranslations implements [BibleAPI]. It GETs /bibles and maps each
// entry to a [models.Translation].
func (h *httpBibleAPI) ListTranslations(ctx context.Context) ([]models.Translation, error) {
	var envelope biblesEnvelope

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&envelope).
		Get("/bibles")
	if err != nil {
		return nil, fmt.Errorf("list translations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	translations := make([]models.Translation, 0, len(envelope.Data))
	for _, b := range envelope.Data {
		translations = append(translations, models.Translation{
			ID:           b.ID,
			Name:         b.Name,
			Abbreviation: b.Abbreviation,
		})
	}

	return translations, nil
}
