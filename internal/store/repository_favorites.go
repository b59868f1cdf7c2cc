package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/models"
)

var favoriteColumns = []string{"id", "reference", "verse_text", "translation", "created_at"}

var favoriteSortColumns = map[string]struct{}{
	"created_at":  {},
	"reference":   {},
	"translation": {},
}

// knownTranslations maps opaque upstream translation ids to short human
// abbreviations for display.
var knownTranslations = map[string]string{
	"de4e12af7f28f599-02": "KJV",
	"de4e12af7f28f599-01": "ASV",
	"9879dbb7cfe39e4d-01": "WEB",
}

type favoritesRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewFavoritesRepository(db *DB, logger *logger.Logger) FavoritesRepository {
	return &favoritesRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Create saves a verse to favorites. Duplicate favorites and missing
// parameters are expected conditions and come back as a failure Result,
// never as an error. The (reference, translation) uniqueness invariant is
// checked before the insert so re-favoriting the same verse in the same
// translation leaves the table unchanged.
func (f *favoritesRepository) Create(ctx context.Context, reference, verseText, translation string) (models.Result, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(reference) == "" ||
		strings.TrimSpace(verseText) == "" ||
		strings.TrimSpace(translation) == "" {
		return models.Failure(models.ResultInvalidInput, "Missing required parameters"), nil
	}

	exists, err := f.IsFavorite(ctx, reference, translation)
	if err != nil {
		return models.Failure(models.ResultFailed, "Failed to add to favorites"), err
	}
	if exists {
		return models.Failure(models.ResultDuplicate, "This verse is already in your favorites"), nil
	}

	createdAt := f.now().UTC().Format(time.RFC3339)
	_, err = f.db.Exec(ctx, insertFavorite, reference, verseText, translation, createdAt)
	if err != nil && !errors.Is(err, ErrQuotaExceeded) {
		log.Err(err).
			Str("func", "favoritesRepository.Create").
			Str("reference", reference).
			Str("translation", translation).
			Msg("failed to insert favorite")
		return models.Failure(models.ResultFailed, "Failed to add to favorites"), err
	}

	// A quota-failed flush still created the row in memory: report success
	// and let the caller surface the durability warning from err.
	return models.OK("Added to favorites successfully"), err
}

// Delete removes a favorite by id. An invalid id and an unknown id are
// distinct failure results, not errors.
func (f *favoritesRepository) Delete(ctx context.Context, id int64) (models.Result, error) {
	log := logger.FromContext(ctx)

	if id <= 0 {
		return models.Failure(models.ResultInvalidInput, "Invalid favorite ID"), nil
	}

	_, found, err := f.GetByID(ctx, id)
	if err != nil {
		return models.Failure(models.ResultFailed, "Failed to remove from favorites"), err
	}
	if !found {
		return models.Failure(models.ResultNotFound, "Favorite not found"), nil
	}

	_, err = f.db.Exec(ctx, deleteFavorite, id)
	if err != nil && !errors.Is(err, ErrQuotaExceeded) {
		log.Err(err).
			Str("func", "favoritesRepository.Delete").
			Int64("id", id).
			Msg("failed to delete favorite")
		return models.Failure(models.ResultFailed, "Failed to remove from favorites"), err
	}

	return models.OK("Removed from favorites successfully"), err
}

// IsFavorite reports whether the (reference, translation) pair is already
// saved.
func (f *favoritesRepository) IsFavorite(ctx context.Context, reference, translation string) (bool, error) {
	var id int64
	err := f.db.QueryRow(ctx, getFavoriteIDByPair, reference, translation).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check favorite existence: %w", err)
	}
	return true, nil
}

// GetAll returns every favorite ordered by the requested column. Invalid
// sort arguments fall back to created_at DESC.
func (f *favoritesRepository) GetAll(ctx context.Context, sortBy, order string) ([]models.Favorite, error) {
	column, direction := normalizeSort(sortBy, order, favoriteSortColumns, "created_at")

	query, args, err := sq.Select(favoriteColumns...).
		From("favorites").
		OrderBy(column + " " + direction).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return f.queryFavorites(ctx, query, args...)
}

func (f *favoritesRepository) GetByTranslation(ctx context.Context, translation string) ([]models.Favorite, error) {
	return f.queryFavorites(ctx, getFavoritesByTranslation, translation)
}

func (f *favoritesRepository) GetByID(ctx context.Context, id int64) (models.Favorite, bool, error) {
	var fav models.Favorite
	row := f.db.QueryRow(ctx, getFavoriteByID, id)

	err := row.Scan(&fav.ID, &fav.Reference, &fav.VerseText, &fav.Translation, &fav.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Favorite{}, false, nil
	}
	if err != nil {
		return models.Favorite{}, false, fmt.Errorf("failed to scan favorite row (id=%d): %w", id, err)
	}

	return fav, true, nil
}

func (f *favoritesRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := f.db.QueryRow(ctx, countFavorites).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

// TranslationDisplayName maps a known translation id to its abbreviation.
// Unknown ids fall back to the first 8 characters of the id; the fallback
// is lossy and display-only.
func (f *favoritesRepository) TranslationDisplayName(translationID string) string {
	if name, ok := knownTranslations[translationID]; ok {
		return name
	}
	if len(translationID) > 8 {
		return translationID[:8]
	}
	return translationID
}

func (f *favoritesRepository) queryFavorites(ctx context.Context, query string, args ...any) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	rows, err := f.db.Query(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "favoritesRepository.queryFavorites").Msg("failed to query favorites")
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var fav models.Favorite
		scanErr := rows.Scan(&fav.ID, &fav.Reference, &fav.VerseText, &fav.Translation, &fav.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "favoritesRepository.queryFavorites").Msg("failed to scan favorite row")
			return nil, fmt.Errorf("failed to scan favorite row: %w", scanErr)
		}
		favorites = append(favorites, fav)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating favorite rows: %w", rowsErr)
	}

	return favorites, nil
}
