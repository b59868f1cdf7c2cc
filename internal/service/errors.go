package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrMissingReference     = errors.New("reference parameter is required")
	ErrMissingQuery         = errors.New("q query parameter is required")
	ErrMissingTranslationID = errors.New("bible_id query parameter is required")

	ErrNoTranslations = errors.New("unable to fetch translations")
)
