package config

import "errors"

// ErrInvalidConfig is returned (wrapped) when the merged configuration
// fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")
