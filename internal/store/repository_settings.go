package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/models"
)

type settingsRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{db: db, logger: logger}
}

func (s *settingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, true, nil
}

// Upsert inserts or replaces a setting by key. Settings are never plain-
// inserted so repeated initialization cannot fail on existing keys.
func (s *settingsRepository) Upsert(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	_, err := s.db.Exec(ctx, upsertSetting, key, value)
	if err != nil && !errors.Is(err, ErrQuotaExceeded) {
		log.Err(err).
			Str("func", "settingsRepository.Upsert").
			Str("key", key).
			Msg("failed to upsert setting")
		return fmt.Errorf("failed to upsert setting %q: %w", key, err)
	}

	return err
}

func (s *settingsRepository) All(ctx context.Context) ([]models.Setting, error) {
	rows, err := s.db.Query(ctx, getAllSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	settings := make([]models.Setting, 0)
	for rows.Next() {
		var st models.Setting
		if err = rows.Scan(&st.Key, &st.Value); err != nil {
			return nil, fmt.Errorf("failed to scan setting row: %w", err)
		}
		settings = append(settings, st)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating setting rows: %w", err)
	}

	return settings, nil
}

// Translation returns the default translation id, falling back to the
// well-known KJV id when the key is absent.
func (s *settingsRepository) Translation(ctx context.Context) (string, error) {
	value, found, err := s.Get(ctx, models.SettingTranslation)
	if err != nil {
		return "", err
	}
	if !found || value == "" {
		return models.DefaultTranslationID, nil
	}
	return value, nil
}

func (s *settingsRepository) SetTranslation(ctx context.Context, id string) error {
	return s.Upsert(ctx, models.SettingTranslation, id)
}

// Theme returns "dark" only when the stored value is exactly that; any
// other value, or an absent key, means "light".
func (s *settingsRepository) Theme(ctx context.Context) (string, error) {
	value, _, err := s.Get(ctx, models.SettingTheme)
	if err != nil {
		return "", err
	}
	if value == models.ThemeDark {
		return models.ThemeDark, nil
	}
	return models.ThemeLight, nil
}

func (s *settingsRepository) SetTheme(ctx context.Context, theme string) error {
	return s.Upsert(ctx, models.SettingTheme, theme)
}

// ToggleTheme flips between the two theme states, persists the new one and
// returns it. No other transitions exist.
func (s *settingsRepository) ToggleTheme(ctx context.Context) (string, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}

	next := models.ThemeDark
	if current == models.ThemeDark {
		next = models.ThemeLight
	}

	if err = s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

func (s *settingsRepository) ViewMode(ctx context.Context) (string, error) {
	value, found, err := s.Get(ctx, models.SettingViewMode)
	if err != nil {
		return "", err
	}
	if !found || value == "" {
		return models.DefaultViewMode, nil
	}
	return value, nil
}

func (s *settingsRepository) SetViewMode(ctx context.Context, mode string) error {
	return s.Upsert(ctx, models.SettingViewMode, mode)
}
