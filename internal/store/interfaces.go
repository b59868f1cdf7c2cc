package store

import (
	"context"

	"github.com/faithdive/faith-dive/models"
)

// JournalRepository is the typed CRUD facade over the journals table.
//
// Create and Update expect reference, verseText and notes to be non-empty
// after trimming; that validation is the UI layer's contract and is not
// repeated here.
type JournalRepository interface {
	Create(ctx context.Context, reference, verseText, notes string) (models.JournalEntry, error)
	Update(ctx context.Context, id int64, reference, verseText, notes string) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context, sortBy, order string) ([]models.JournalEntry, error)
	GetByID(ctx context.Context, id int64) (models.JournalEntry, bool, error)
	GetByBook(ctx context.Context, book string) ([]models.JournalEntry, error)
	Books(ctx context.Context) ([]string, error)
	Search(ctx context.Context, query string) ([]models.JournalEntry, error)
	Count(ctx context.Context) (int64, error)
}

// FavoritesRepository is the typed facade over the favorites table.
//
// Expected business outcomes (duplicate favorite, unknown id, missing
// parameters) come back as a [models.Result]; the error return is reserved
// for data-integrity failures such as a failed statement or a failed
// durable flush.
type FavoritesRepository interface {
	Create(ctx context.Context, reference, verseText, translation string) (models.Result, error)
	Delete(ctx context.Context, id int64) (models.Result, error)
	IsFavorite(ctx context.Context, reference, translation string) (bool, error)
	GetAll(ctx context.Context, sortBy, order string) ([]models.Favorite, error)
	GetByTranslation(ctx context.Context, translation string) ([]models.Favorite, error)
	GetByID(ctx context.Context, id int64) (models.Favorite, bool, error)
	Count(ctx context.Context) (int64, error)
	TranslationDisplayName(translationID string) string
}

// SettingsRepository is a thin get/upsert facade over the settings table
// plus the two-state theme machine.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Upsert(ctx context.Context, key, value string) error
	All(ctx context.Context) ([]models.Setting, error)
	Translation(ctx context.Context) (string, error)
	SetTranslation(ctx context.Context, id string) error
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, theme string) error
	ToggleTheme(ctx context.Context) (string, error)
	ViewMode(ctx context.Context) (string, error)
	SetViewMode(ctx context.Context, mode string) error
}
