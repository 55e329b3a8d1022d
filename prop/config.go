// Package prop runs properties against a Generator and a predicate:
// it drives the iteration loop, classifies outcomes into labels, and
// shrinks any counterexample it finds down to a minimal reproduction.
package prop

// Config controls how a Property.Run executes: how many iterations to
// try, how far to shrink, how big generation is allowed to grow, and how
// many discarded generations to tolerate before giving up. Every field
// has a sensible default (see Default) and every mutator returns a new
// Config, leaving the receiver untouched — Config is a plain immutable
// value, never shared-mutable state.
type Config struct {
	testLimit    int
	shrinkLimit  int
	sizeLimit    int
	discardLimit int
}

// Default values match spec: 100 test iterations, up to 1000 shrink
// steps, a size ceiling of 100, and up to 100 discarded generations
// before a run gives up.
const (
	DefaultTestLimit    = 100
	DefaultShrinkLimit  = 1000
	DefaultSizeLimit    = 100
	DefaultDiscardLimit = 100
)

// Default returns the Config every Property uses unless overridden.
func Default() Config {
	return Config{
		testLimit:    DefaultTestLimit,
		shrinkLimit:  DefaultShrinkLimit,
		sizeLimit:    DefaultSizeLimit,
		discardLimit: DefaultDiscardLimit,
	}
}

// WithTests returns a copy of c with a new testLimit. Zero is accepted
// (a degenerate, immediately-passing run) but negative values are
// clamped to zero.
func (c Config) WithTests(n int) Config {
	c.testLimit = clampNonNegative(n)
	return c
}

// WithShrinks returns a copy of c with a new shrinkLimit.
func (c Config) WithShrinks(n int) Config {
	c.shrinkLimit = clampNonNegative(n)
	return c
}

// WithSizeLimit returns a copy of c with a new sizeLimit.
func (c Config) WithSizeLimit(n int) Config {
	c.sizeLimit = clampNonNegative(n)
	return c
}

// WithDiscardLimit returns a copy of c with a new discardLimit.
func (c Config) WithDiscardLimit(n int) Config {
	c.discardLimit = clampNonNegative(n)
	return c
}

// TestLimit, ShrinkLimit, SizeLimit, and DiscardLimit expose the
// configured values read-only, mainly so diagnostics and tests can
// report what a run was configured with.
func (c Config) TestLimit() int    { return c.testLimit }
func (c Config) ShrinkLimit() int  { return c.shrinkLimit }
func (c Config) SizeLimit() int    { return c.sizeLimit }
func (c Config) DiscardLimit() int { return c.discardLimit }

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
