// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Faith Dive Authors

package store

const (
	insertJournal = `
		INSERT INTO journals (
			reference,
			verse_text,
			notes,
			book,
			timestamp
		) VALUES (?, ?, ?, ?, ?);`

	updateJournal = `
		UPDATE journals SET
			reference  = ?,
			verse_text = ?,
			notes      = ?,
			book       = ?
		WHERE id = ?;`

	deleteJournal = `
		DELETE FROM journals
		WHERE id = ?;`

	getJournalByID = `
		SELECT id, reference, verse_text, notes, book, timestamp
		FROM journals
		WHERE id = ?;`

	getJournalsByBook = `
		SELECT id, reference, verse_text, notes, book, timestamp
		FROM journals
		WHERE book = ?
		ORDER BY timestamp DESC;`

	getJournalBooks = `
		SELECT DISTINCT book
		FROM journals
		ORDER BY book;`

	countJournals = `
		SELECT COUNT(*) AS count
		FROM journals;`

	deleteAllJournals = `
		DELETE FROM journals;`
)

const (
	insertFavorite = `
		INSERT INTO favorites (
			reference,
			verse_text,
			translation,
			created_at
		) VALUES (?, ?, ?, ?);`

	deleteFavorite = `
		DELETE FROM favorites
		WHERE id = ?;`

	getFavoriteByID = `
		SELECT id, reference, verse_text, translation, created_at
		FROM favorites
		WHERE id = ?;`

	getFavoriteIDByPair = `
		SELECT id
		FROM favorites
		WHERE reference = ? AND translation = ?;`

	getFavoritesByTranslation = `
		SELECT id, reference, verse_text, translation, created_at
		FROM favorites
		WHERE translation = ?
		ORDER BY created_at DESC;`

	countFavorites = `
		SELECT COUNT(*) AS count
		FROM favorites;`

	deleteAllFavorites = `
		DELETE FROM favorites;`
)

const (
	getSetting = `
		SELECT value
		FROM settings
		WHERE key = ?;`

	upsertSetting = `
		INSERT OR REPLACE INTO settings (key, value)
		VALUES (?, ?);`

	getAllSettings = `
		SELECT key, value
		FROM settings
		ORDER BY key ASC;`
)
