package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faithdive/faith-dive/internal/logger"
)

func TestExtractBookName(t *testing.T) {
	tests := []struct {
		reference string
		want      string
	}{
		{"John 3:16", "John"},
		{"1 Corinthians 13:4", "1 Corinthians"},
		{"2 Timothy 1:7", "2 Timothy"},
		{"Song of Solomon 2:1", "Song of Solomon"},
		{"Genesis 1:1", "Genesis"},
		{"Psalm 23", "Psalm"},
		// no clear book/number boundary falls back to the whole reference
		{"SomeReference", "SomeReference"},
	}

	for _, tt := range tests {
		t.Run(tt.reference, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBookName(tt.reference))
		})
	}
}

func TestJournalRepository_CreateDerivesBookAndTimestamp(t *testing.T) {
	db, _ := newTestDB(t)
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	repo := &journalRepository{db: db, logger: logger.Nop(), now: func() time.Time { return fixed }}
	ctx := testContext()

	entry, err := repo.Create(ctx, "1 Corinthians 13:4", "Love is patient...", "a note")
	require.NoError(t, err)

	assert.Equal(t, "1 Corinthians", entry.Book)
	assert.Equal(t, "2026-03-15T10:00:00Z", entry.Timestamp)
	assert.Positive(t, entry.ID)

	stored, found, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, entry, stored)
}

func TestJournalRepository_UpdateKeepsTimestamp(t *testing.T) {
	db, _ := newTestDB(t)
	fixed := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	repo := &journalRepository{db: db, logger: logger.Nop(), now: func() time.Time { return fixed }}
	ctx := testContext()

	entry, err := repo.Create(ctx, "John 3:16", "For God so loved...", "first draft")
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, entry.ID, "Romans 8:28", "And we know...", "rewritten"))

	updated, found, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Romans 8:28", updated.Reference)
	assert.Equal(t, "Romans", updated.Book)
	assert.Equal(t, entry.Timestamp, updated.Timestamp)
}

func TestJournalRepository_DeleteMissingIDIsNoError(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newTestJournalRepo(t, db)

	assert.NoError(t, repo.Delete(testContext(), 999999))
}

func TestJournalRepository_GetAllSorting(t *testing.T) {
	db, _ := newTestDB(t)
	ctx := testContext()

	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := &journalRepository{db: db, logger: logger.Nop()}
	for i, ref := range []string{"Mark 1:1", "Acts 2:38", "Luke 15:11"} {
		stamp := ts.Add(time.Duration(i) * time.Hour)
		repo.now = func() time.Time { return stamp }
		_, err := repo.Create(ctx, ref, "text", "notes")
		require.NoError(t, err)
	}

	newestFirst, err := repo.GetAll(ctx, "timestamp", "DESC")
	require.NoError(t, err)
	require.Len(t, newestFirst, 3)
	assert.Equal(t, "Luke 15:11", newestFirst[0].Reference)

	byReference, err := repo.GetAll(ctx, "reference", "ASC")
	require.NoError(t, err)
	assert.Equal(t, "Acts 2:38", byReference[0].Reference)

	// invalid sort arguments silently fall back to timestamp DESC
	fallback, err := repo.GetAll(ctx, "; DROP TABLE journals", "sideways")
	require.NoError(t, err)
	require.Len(t, fallback, 3)
	assert.Equal(t, newestFirst, fallback)
}

func TestJournalRepository_Search(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newTestJournalRepo(t, db)
	ctx := testContext()

	_, err := repo.Create(ctx, "John 3:16", "For God so loved the world", "grace")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Psalm 23:1", "The Lord is my shepherd", "comfort in hard seasons")
	require.NoError(t, err)

	// case-insensitive match on notes
	hits, err := repo.Search(ctx, "COMFORT")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Psalm 23:1", hits[0].Reference)

	// match on verse text
	hits, err = repo.Search(ctx, "shepherd")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	// match on reference
	hits, err = repo.Search(ctx, "john")
	require.NoError(t, err)
	require.Len(t, hits, 1)

	hits, err = repo.Search(ctx, "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, hits)
	assert.NotNil(t, hits)
}

func TestJournalRepository_BooksAndByBook(t *testing.T) {
	db, _ := newTestDB(t)
	repo := newTestJournalRepo(t, db)
	ctx := testContext()

	for _, ref := range []string{"John 3:16", "John 14:6", "Romans 12:2"} {
		_, err := repo.Create(ctx, ref, "text", "notes")
		require.NoError(t, err)
	}

	books, err := repo.Books(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "Romans"}, books)

	johns, err := repo.GetByBook(ctx, "John")
	require.NoError(t, err)
	assert.Len(t, johns, 2)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
