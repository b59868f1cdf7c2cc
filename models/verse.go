package models

// Verse is one scripture passage returned by the upstream lookup API.
type Verse struct {
	Reference   string `json:"reference"`
	Text        string `json:"text"`
	Translation string `json:"bibleId,omitempty"`
}

// Translation describes one scripture edition offered by the upstream API.
// ID is opaque; Abbreviation is the short human label (e.g. "KJV").
type Translation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// SearchResponse is the envelope returned by the verse keyword search
// endpoint.
type SearchResponse struct {
	Verses []Verse `json:"verses"`
	Total  int     `json:"total"`
}
