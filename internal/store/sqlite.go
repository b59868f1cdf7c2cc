package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/migrations"
)

// DB is the embedded relational store: an in-memory SQLite database whose
// serialized image is written to a durable slot by the persistence adapter
// after every mutating statement. It is the single source of truth for
// journals, favorites and settings; business validation lives in the
// repositories, not here.
//
// The connection pool is pinned to exactly one connection so every
// statement, the migrations and the serialize/deserialize calls all see the
// same in-memory database. Mutations are serialized by an internal mutex;
// the store is not designed for concurrent writers.
type DB struct {
	sql    *sql.DB
	images ImageStore
	logger *logger.Logger

	mu          sync.Mutex
	initialized bool
}

// NewDB opens a fresh in-memory database bound to the given image slot.
// Init must be called before any statement is issued.
func NewDB(images ImageStore, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		log.Err(err).Str("func", "NewDB").Msg("error opening in-memory database")
		return nil, fmt.Errorf("error opening in-memory database: %w", err)
	}

	// One pooled connection, never recycled: an in-memory SQLite database
	// lives and dies with its connection.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	return &DB{sql: conn, images: images, logger: log}, nil
}

// Init loads the persisted image when one exists, otherwise creates the
// schema fresh (three tables plus default settings rows) and persists
// immediately. Migrations run in both paths: the goose version table
// travels inside the image, so restored databases only apply migrations
// newer than the image. Idempotent per process lifetime.
func (d *DB) Init(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}

	if err := d.sql.PingContext(ctx); err != nil {
		d.logger.Err(err).Str("func", "DB.Init").Msg("error connecting database (ping)")
		return fmt.Errorf("error connecting database: %w", err)
	}

	image, found, err := d.images.Load(ctx)
	if err != nil {
		return fmt.Errorf("load persisted image: %w", err)
	}

	if found {
		if err = d.deserialize(ctx, image); err != nil {
			d.logger.Err(err).Str("func", "DB.Init").Msg("persisted image could not be restored")
			return err
		}
		d.logger.Debug().Str("func", "DB.Init").Int("image_bytes", len(image)).Msg("loaded existing database")
	}

	if err = migrations.Migrate(d.sql); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if !found {
		// First run: make the freshly created schema durable right away.
		if err = d.flushLocked(ctx); err != nil {
			return err
		}
		d.logger.Debug().Str("func", "DB.Init").Msg("created new database")
	}

	d.initialized = true
	return nil
}

// Exec runs a mutating statement and, on success, flushes the serialized
// image through the persistence adapter before returning. When the flush
// fails the statement has still been applied in memory: the returned error
// matches [ErrQuotaExceeded] (or wraps the I/O failure) and the sql.Result
// is valid, so callers can keep working while warning the user that
// durability was not achieved.
func (d *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return nil, ErrNotInitialized
	}

	res, err := d.sql.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	if flushErr := d.flushLocked(ctx); flushErr != nil {
		return res, flushErr
	}

	return res, nil
}

// WithFlush runs fn inside a single transaction and flushes the image once
// after commit instead of once per statement. Batched operations such as
// import use it so a hundred inserted rows cost one durable write.
func (d *DB) WithFlush(ctx context.Context, fn func(ctx context.Context, tx *sql.Tx) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized {
		return ErrNotInitialized
	}

	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrStore, err)
	}

	if err = fn(ctx, tx); err != nil {
		tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrStore, err)
	}

	return d.flushLocked(ctx)
}

// Query runs a read-only statement. Callers own the returned rows and must
// close them.
func (d *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	if !d.isInitialized() {
		return nil, ErrNotInitialized
	}

	rows, err := d.sql.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return rows, nil
}

// QueryRow runs a single-row lookup. Absence surfaces as sql.ErrNoRows
// from Scan, which repositories translate into their own "absent" shape.
func (d *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return d.sql.QueryRowContext(ctx, query, args...)
}

// Close releases the underlying connection. The in-memory database is gone
// afterwards; only the durable image remains.
func (d *DB) Close() error {
	return d.sql.Close()
}

func (d *DB) isInitialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.initialized
}

// flushLocked serializes the database and writes it to the durable slot.
// Callers must hold d.mu.
func (d *DB) flushLocked(ctx context.Context) error {
	image, err := d.serialize(ctx)
	if err != nil {
		return err
	}

	if err = d.images.Flush(ctx, image); err != nil {
		d.logger.Err(err).Str("func", "DB.flushLocked").Int("image_bytes", len(image)).Msg("flush to durable slot failed")
		return fmt.Errorf("flush durable image: %w", err)
	}

	return nil
}

func (d *DB) serialize(ctx context.Context) ([]byte, error) {
	conn, err := d.sql.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	var image []byte
	err = conn.Raw(func(driverConn any) error {
		sc, ok := driverConn.(*sqlite3.SQLiteConn)
		if !ok {
			return fmt.Errorf("unexpected driver connection type %T", driverConn)
		}
		b, serr := sc.Serialize("")
		if serr != nil {
			return serr
		}
		image = b
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("serialize database image: %w", err)
	}

	return image, nil
}

func (d *DB) deserialize(ctx context.Context, image []byte) error {
	conn, err := d.sql.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	err = conn.Raw(func(driverConn any) error {
		sc, ok := driverConn.(*sqlite3.SQLiteConn)
		if !ok {
			return fmt.Errorf("unexpected driver connection type %T", driverConn)
		}
		return sc.Deserialize(image, "")
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageCorrupted, err)
	}

	return nil
}
