package adapter

import "errors"

var (
	ErrVerseNotFound = errors.New("verse not found")
	ErrUnauthorized  = errors.New("upstream rejected api key")
	ErrUpstream      = errors.New("upstream api error")
)
