package velocity

import "errors"

// Argument validation errors. All of them are programmer errors: the
// cache state is left untouched when one is returned, and there is
// nothing to retry.
var (
	// ErrEmptyKey is returned by Get, Set and Delete when key == "".
	// Exists deliberately returns false instead (see Cache.Exists).
	ErrEmptyKey = errors.New("velocity: key must be non-empty")

	// ErrNegativeTTL is returned by Set when ttl < 0. A zero ttl means
	// "never expires".
	ErrNegativeTTL = errors.New("velocity: ttl must be non-negative")

	// ErrInvalidMaxSize is returned by New when Options.MaxSize <= 0.
	ErrInvalidMaxSize = errors.New("velocity: max size must be positive")
)
