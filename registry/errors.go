package registry

import "errors"

// ErrNoStrategy is returned by Build when no registered Strategy claims
// a Schema and graceful fallback is off.
var ErrNoStrategy = errors.New("registry: no strategy handles this schema")
