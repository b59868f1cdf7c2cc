package models

// JournalEntry is a single scripture annotation written by the user.
//
// Book is denormalized from Reference at write time so entries can be
// grouped and filtered by book without re-parsing references on every read.
// Timestamp records creation time and is never changed by updates.
type JournalEntry struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	VerseText string `json:"verse_text"`
	Notes     string `json:"notes"`
	Book      string `json:"book"`
	Timestamp string `json:"timestamp"`
}
