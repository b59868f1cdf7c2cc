package store

import "errors"

// Sentinel errors returned by the embedded store and its persistence
// adapter. Callers should use [errors.Is] to match against these values.
var (
	// ErrStore is returned (wrapped) when a SQL statement fails at the
	// data-engine level: malformed statement or constraint violation.
	// It is not expected in normal operation; surfacing it to the user
	// indicates a repository-layer validation bug.
	ErrStore = errors.New("store statement failed")

	// ErrQuotaExceeded is returned when flushing the serialized database
	// image to the durable slot fails because the image exceeds the
	// configured storage quota (or the filesystem is out of space). The
	// in-memory mutation is kept; only durability was not achieved.
	ErrQuotaExceeded = errors.New("quota_exceeded")

	// ErrImageCorrupted is returned when a persisted image exists but
	// cannot be loaded back into the database engine.
	ErrImageCorrupted = errors.New("persisted image is corrupted")

	// ErrNoRecognizedData is returned by ImportAll when the supplied
	// document carries none of the journals, favorites or settings
	// sections. The import is aborted before any deletion occurs.
	ErrNoRecognizedData = errors.New("no_recognized_data")

	// ErrNotInitialized is returned when a query or statement reaches the
	// store before Init has completed.
	ErrNotInitialized = errors.New("store is not initialized")
)
