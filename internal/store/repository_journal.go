package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/faithdive/faith-dive/internal/logger"
	"github.com/faithdive/faith-dive/models"
)

var journalColumns = []string{"id", "reference", "verse_text", "notes", "book", "timestamp"}

// Sort whitelist for GetAll. Anything else silently falls back to the
// default so UI call sites never have to handle a sort error.
var journalSortColumns = map[string]struct{}{
	"timestamp": {},
	"reference": {},
	"book":      {},
}

// bookNameRE captures the leading book name of a reference: an optional
// numeral-plus-space prefix ("1 Corinthians") followed by the non-numeric
// book run. References without a clear boundary fall back to the whole
// string.
var bookNameRE = regexp.MustCompile(`^([^\d]*(?:\d+\s+)?[^\d]+)`)

// ExtractBookName derives the denormalized book column from a scripture
// reference: "John 3:16" yields "John", "1 Corinthians 13:4" yields
// "1 Corinthians".
func ExtractBookName(reference string) string {
	m := bookNameRE.FindStringSubmatch(reference)
	if m == nil {
		return strings.TrimSpace(reference)
	}
	return strings.TrimSpace(m[1])
}

type journalRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	return &journalRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Create inserts a new entry, deriving the book from the reference and
// stamping the creation time. The timestamp is never touched again.
func (j *journalRepository) Create(ctx context.Context, reference, verseText, notes string) (models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	entry := models.JournalEntry{
		Reference: reference,
		VerseText: verseText,
		Notes:     notes,
		Book:      ExtractBookName(reference),
		Timestamp: j.now().UTC().Format(time.RFC3339),
	}

	res, err := j.db.Exec(ctx, insertJournal,
		entry.Reference, entry.VerseText, entry.Notes, entry.Book, entry.Timestamp)
	if err != nil && !errors.Is(err, ErrQuotaExceeded) {
		log.Err(err).
			Str("func", "journalRepository.Create").
			Str("reference", reference).
			Msg("failed to insert journal entry")
		return models.JournalEntry{}, fmt.Errorf("failed to create journal entry: %w", err)
	}

	if id, idErr := res.LastInsertId(); idErr == nil {
		entry.ID = id
	}

	// err is either nil or a flush failure; the row exists in memory
	// either way, so the entry is returned alongside it.
	return entry, err
}

// Update rewrites the mutable fields and re-derives the book. The original
// creation timestamp is preserved.
func (j *journalRepository) Update(ctx context.Context, id int64, reference, verseText, notes string) error {
	log := logger.FromContext(ctx)

	_, err := j.db.Exec(ctx, updateJournal,
		reference, verseText, notes, ExtractBookName(reference), id)
	if err != nil && !errors.Is(err, ErrQuotaExceeded) {
		log.Err(err).
			Str("func", "journalRepository.Update").
			Int64("id", id).
			Msg("failed to update journal entry")
		return fmt.Errorf("failed to update journal entry (id=%d): %w", id, err)
	}

	return err
}

// Delete is unconditional: deleting an id that does not exist is treated
// as already-deleted, not an error.
func (j *journalRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	_, err := j.db.Exec(ctx, deleteJournal, id)
	if err != nil && !errors.Is(err, ErrQuotaExceeded) {
		log.Err(err).
			Str("func", "journalRepository.Delete").
			Int64("id", id).
			Msg("failed to delete journal entry")
		return fmt.Errorf("failed to delete journal entry (id=%d): %w", id, err)
	}

	return err
}

// GetAll returns every entry ordered by the requested column. Invalid sort
// arguments fall back to timestamp DESC.
func (j *journalRepository) GetAll(ctx context.Context, sortBy, order string) ([]models.JournalEntry, error) {
	column, direction := normalizeSort(sortBy, order, journalSortColumns, "timestamp")

	query, args, err := sq.Select(journalColumns...).
		From("journals").
		OrderBy(column + " " + direction).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return j.queryEntries(ctx, query, args...)
}

func (j *journalRepository) GetByID(ctx context.Context, id int64) (models.JournalEntry, bool, error) {
	var entry models.JournalEntry
	row := j.db.QueryRow(ctx, getJournalByID, id)

	err := row.Scan(&entry.ID, &entry.Reference, &entry.VerseText, &entry.Notes, &entry.Book, &entry.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntry{}, false, nil
	}
	if err != nil {
		return models.JournalEntry{}, false, fmt.Errorf("failed to scan journal row (id=%d): %w", id, err)
	}

	return entry, true, nil
}

func (j *journalRepository) GetByBook(ctx context.Context, book string) ([]models.JournalEntry, error) {
	return j.queryEntries(ctx, getJournalsByBook, book)
}

// Books returns the distinct book names present in the journal, sorted.
func (j *journalRepository) Books(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := j.db.Query(ctx, getJournalBooks)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.Books").Msg("failed to query journal books")
		return nil, fmt.Errorf("failed to query journal books: %w", err)
	}
	defer rows.Close()

	books := make([]string, 0)
	for rows.Next() {
		var book string
		if err = rows.Scan(&book); err != nil {
			return nil, fmt.Errorf("failed to scan book row: %w", err)
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating book rows: %w", err)
	}

	return books, nil
}

// Search performs a case-insensitive substring match across reference,
// verse text and notes, newest entries first.
func (j *journalRepository) Search(ctx context.Context, query string) ([]models.JournalEntry, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	stmt, args, err := sq.Select(journalColumns...).
		From("journals").
		Where(sq.Or{
			sq.Like{"LOWER(reference)": pattern},
			sq.Like{"LOWER(verse_text)": pattern},
			sq.Like{"LOWER(notes)": pattern},
		}).
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	return j.queryEntries(ctx, stmt, args...)
}

func (j *journalRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := j.db.QueryRow(ctx, countJournals).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count journal entries: %w", err)
	}
	return count, nil
}

func (j *journalRepository) queryEntries(ctx context.Context, query string, args ...any) ([]models.JournalEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := j.db.Query(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "journalRepository.queryEntries").Msg("failed to query journal entries")
		return nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var entry models.JournalEntry
		scanErr := rows.Scan(&entry.ID, &entry.Reference, &entry.VerseText, &entry.Notes, &entry.Book, &entry.Timestamp)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "journalRepository.queryEntries").Msg("failed to scan journal row")
			return nil, fmt.Errorf("failed to scan journal row: %w", scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", rowsErr)
	}

	return entries, nil
}

// normalizeSort validates a sort column and direction against a whitelist,
// silently falling back to the given default column and DESC order.
func normalizeSort(sortBy, order string, allowed map[string]struct{}, fallback string) (string, string) {
	column := fallback
	if _, ok := allowed[sortBy]; ok {
		column = sortBy
	}

	direction := "DESC"
	if strings.EqualFold(order, "ASC") {
		direction = "ASC"
	}

	return column, direction
}
