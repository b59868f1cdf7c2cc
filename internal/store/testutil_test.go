package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/faithdive/faith-dive/internal/logger"
)

// memImages is an in-memory ImageStore for tests. failWith, when set, is
// returned by Flush while the image is still discarded — mimicking a
// durable slot that ran out of space.
type memImages struct {
	mu       sync.Mutex
	image    []byte
	present  bool
	flushes  int
	failWith error
}

func (m *memImages) Flush(_ context.Context, image []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flushes++
	if m.failWith != nil {
		return m.failWith
	}

	m.image = append([]byte(nil), image...)
	m.present = true
	return nil
}

func (m *memImages) Load(_ context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.present {
		return nil, false, nil
	}
	return append([]byte(nil), m.image...), true, nil
}

func (m *memImages) setFailure(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

func newTestDB(t *testing.T) (*DB, *memImages) {
	t.Helper()

	images := &memImages{}
	db, err := NewDB(images, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Init(context.Background()))
	return db, images
}

func newTestJournalRepo(t *testing.T, db *DB) *journalRepository {
	t.Helper()
	return &journalRepository{db: db, logger: logger.Nop(), now: time.Now}
}

func newTestFavoritesRepo(t *testing.T, db *DB) *favoritesRepository {
	t.Helper()
	return &favoritesRepository{db: db, logger: logger.Nop(), now: time.Now}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}
