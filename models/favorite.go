package models

// Favorite is a verse the user saved for offline display.
//
// The pair (Reference, Translation) is unique: the same verse may be
// favorited once per translation. Favorites are immutable after creation.
type Favorite struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	VerseText   string `json:"verse_text"`
	Translation string `json:"translation"`
	CreatedAt   string `json:"created_at"`
}
