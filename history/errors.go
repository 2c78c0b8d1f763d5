package history

import "errors"

// Sentinel errors for store operations.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrAppendFailed    = errors.New("append failed")
	ErrLoadFailed      = errors.New("load failed")
)
