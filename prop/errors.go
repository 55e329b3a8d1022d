package prop

import "errors"

// ErrPropertyFailed is the sentinel Property.Check wraps its formatted
// failure message around, so callers can still errors.Is against a
// stable value instead of parsing text.
var ErrPropertyFailed = errors.New("prop: property did not pass")
