package seed

import "errors"

// ErrInvalidBound is the sentinel for NextBounded being asked to draw from
// a negative bound. Callers branch on it with errors.Is; it is raised via
// panic because NextBounded's signature (matching spec §6) has no error
// return.
var ErrInvalidBound = errors.New("seed: bound must be non-negative")
