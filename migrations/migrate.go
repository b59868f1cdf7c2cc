// Package migrations embeds the SQL schema of the embedded store and
// applies it with goose. Running migrations is idempotent: the goose
// version table travels inside the persisted image, so a database restored
// from an image skips already-applied migrations.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
