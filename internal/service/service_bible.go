package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/faithdive/faith-dive/internal/adapter"
	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/models"
)

const defaultSearchLimit = 10

type bibleService struct {
	api adapter.BibleAPI

	logger *logger.Logger
}

func NewBibleService(api adapter.BibleAPI, logger *logger.Logger) BibleService {
	return &bibleService{api: api, logger: logger}
}

func (s *bibleService) GetVerse(ctx context.Context, reference, translationID string) (models.Verse, error) {
	reference = strings.TrimSpace(reference)
	translationID = strings.TrimSpace(translationID)

	if reference == "" {
		return models.Verse{}, ErrMissingReference
	}
	if translationID == "" {
		return models.Verse{}, ErrMissingTranslationID
	}

	verse, err := s.api.GetVerse(ctx, reference, translationID)
	if err != nil {
		return models.Verse{}, fmt.Errorf("get verse %q: %w", reference, err)
	}

	return verse, nil
}

func (s *bibleService) Search(ctx context.Context, query, translationID string, limit int) (models.SearchResponse, error) {
	query = strings.TrimSpace(query)
	translationID = strings.TrimSpace(translationID)

	if query == "" {
		return models.SearchResponse{}, ErrMissingQuery
	}
	if translationID == "" {
		return models.SearchResponse{}, ErrMissingTranslationID
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	verses, err := s.api.Search(ctx, query, translationID, limit)
	if err != nil {
		return models.SearchResponse{}, fmt.Errorf("search %q: %w", query, err)
	}
	if verses == nil {
		verses = []models.Verse{}
	}

	return models.SearchResponse{Verses: verses, Total: len(verses)}, nil
}

func (s *bibleService) ListTranslations(ctx context.Context) ([]models.Translation, error) {
	translations, err := s.api.ListTranslations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}

	return translations, nil
}
