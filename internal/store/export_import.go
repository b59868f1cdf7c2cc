package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/models"
)

// ExportImport implements the backup protocol: the only sanctioned path
// for cross-device transfer or disaster recovery. Export produces a full,
// self-describing JSON snapshot; import is a destructive restore, never a
// merge. Merging would re-open the favorite-uniqueness and id-collision
// ambiguities this system does not attempt to resolve.
type ExportImport struct {
	db        *DB
	journals  JournalRepository
	favorites FavoritesRepository
	settings  SettingsRepository
	logger    *logger.Logger
	now       func() time.Time
}

func NewExportImport(db *DB, journals JournalRepository, favorites FavoritesRepository, settings SettingsRepository, log *logger.Logger) *ExportImport {
	return &ExportImport{
		db:        db,
		journals:  journals,
		favorites: favorites,
		settings:  settings,
		logger:    log,
		now:       time.Now,
	}
}

// ExportAll reads every row of all three tables: journals and favorites
// newest first, settings in ascending key order. The document is stamped
// with the export format version and the current time.
func (e *ExportImport) ExportAll(ctx context.Context) (models.ExportDocument, error) {
	journals, err := e.journals.GetAll(ctx, "timestamp", "DESC")
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("export journals: %w", err)
	}

	favorites, err := e.favorites.GetAll(ctx, "created_at", "DESC")
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("export favorites: %w", err)
	}

	settings, err := e.settings.All(ctx)
	if err != nil {
		return models.ExportDocument{}, fmt.Errorf("export settings: %w", err)
	}

	return models.ExportDocument{
		Version:    models.ExportVersion,
		ExportDate: e.now().UTC().Format(time.RFC3339),
		Journals:   journals,
		Favorites:  favorites,
		Settings:   settings,
	}, nil
}

// ImportAll restores the document into the store. When replace is true all
// existing journal and favorite rows are deleted first; settings are only
// ever upserted, never deleted. Journal and favorite rows are re-inserted
// with freshly assigned ids; the imported id field is ignored.
//
// The whole import runs in one transaction with a single durable flush at
// the end. A crash between commit and flush loses the import from the
// durable image; this recovery gap is documented, not fixed.
func (e *ExportImport) ImportAll(ctx context.Context, doc models.ExportDocument, replace bool) error {
	log := logger.FromContext(ctx)

	if !doc.HasData() {
		return fmt.Errorf("import document rejected: %w", ErrNoRecognizedData)
	}

	err := e.db.WithFlush(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if replace {
			if _, err := tx.ExecContext(ctx, deleteAllJournals); err != nil {
				return fmt.Errorf("%w: clear journals: %v", ErrStore, err)
			}
			if _, err := tx.ExecContext(ctx, deleteAllFavorites); err != nil {
				return fmt.Errorf("%w: clear favorites: %v", ErrStore, err)
			}
		}

		for _, entry := range doc.Journals {
			book := entry.Book
			if book == "" {
				book = ExtractBookName(entry.Reference)
			}
			_, err := tx.ExecContext(ctx, insertJournal,
				entry.Reference, entry.VerseText, entry.Notes, book, entry.Timestamp)
			if err != nil {
				return fmt.Errorf("%w: import journal entry: %v", ErrStore, err)
			}
		}

		for _, fav := range doc.Favorites {
			_, err := tx.ExecContext(ctx, insertFavorite,
				fav.Reference, fav.VerseText, fav.Translation, fav.CreatedAt)
			if err != nil {
				return fmt.Errorf("%w: import favorite: %v", ErrStore, err)
			}
		}

		for _, st := range doc.Settings {
			if _, err := tx.ExecContext(ctx, upsertSetting, st.Key, st.Value); err != nil {
				return fmt.Errorf("%w: import setting: %v", ErrStore, err)
			}
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "ExportImport.ImportAll").
			Bool("replace", replace).
			Int("journals", len(doc.Journals)).
			Int("favorites", len(doc.Favorites)).
			Msg("import failed")
		return err
	}

	return nil
}
