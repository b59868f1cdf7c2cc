package store

import (
	"context"
	"fmt"

	"github.com/faithdive/faith-dive/internal/config"
	"github.com/faithdive/faith-dive/internal/logger"
)

// Storages groups the embedded store and its typed repositories into a
// single value constructed once at process start and passed by reference
// to whichever component needs it. There is exactly one instance per
// running application; nothing here is a hidden global.
type Storages struct {
	// DB is the embedded relational store. Exposed for lifecycle calls
	// (Close) only; data access goes through the repositories.
	DB *DB

	// Journals is the journal-entry repository.
	Journals JournalRepository

	// Favorites is the favorites repository.
	Favorites FavoritesRepository

	// Settings is the settings repository.
	Settings SettingsRepository

	// Porter implements the export/import backup protocol.
	Porter *ExportImport
}

// NewStorages initialises the on-device data layer:
//  1. Builds the file-backed image slot from cfg.
//  2. Opens the in-memory database and restores the persisted image when
//     one exists, otherwise creates the schema and persists immediately.
//  3. Wires the repositories and the export/import protocol.
func NewStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	images := NewFileImageStore(cfg.ImagePath, cfg.ImageQuotaBytes)

	db, err := NewDB(images, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Init(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("store initialization failed: %w", err)
	}

	journals := NewJournalRepository(db, log)
	favorites := NewFavoritesRepository(db, log)
	settings := NewSettingsRepository(db, log)

	return &Storages{
		DB:        db,
		Journals:  journals,
		Favorites: favorites,
		Settings:  settings,
		Porter:    NewExportImport(db, journals, favorites, settings, log),
	}, nil
}
