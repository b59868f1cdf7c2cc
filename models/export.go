package models

// ExportVersion is stamped into every document produced by ExportAll.
const ExportVersion = "1.0.0"

// ExportDocument is the versioned JSON snapshot of all user data, used for
// backup and device migration. It is self-describing and independent of the
// binary image the persistence layer writes.
type ExportDocument struct {
	Version    string         `json:"version"`
	ExportDate string         `json:"exportDate"`
	Journals   []JournalEntry `json:"journals"`
	Favorites  []Favorite     `json:"favorites"`
	Settings   []Setting      `json:"settings"`
}

// HasData reports whether the document carries at least one recognized
// section. Import refuses documents for which this is false before touching
// any existing rows.
func (d ExportDocument) HasData() bool {
	return len(d.Journals) > 0 || len(d.Favorites) > 0 || len(d.Settings) > 0
}
