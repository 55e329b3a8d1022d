package gen

import "errors"

// Construction-time sentinels (spec §7's InvalidArgument kind). All are
// raised via panic: the combinator constructors in this package return a
// bare Generator[T] (spec §6), so there is no error return to carry them
// through.
var (
	// ErrInvalidRange is raised when a Range's Min exceeds its Max, or
	// when WithOrigin is given a value outside [Min, Max].
	ErrInvalidRange = errors.New("gen: range min must not exceed max, and origin must lie within range")

	// ErrEmptyChoice is raised by OneOf, Union, Frequency, WeightedUnion
	// and DiscriminatedUnion when given no generators/variants to choose
	// from.
	ErrEmptyChoice = errors.New("gen: at least one generator is required")

	// ErrNonPositiveWeight is raised by Frequency/WeightedUnion when any
	// supplied weight is not strictly positive.
	ErrNonPositiveWeight = errors.New("gen: total weight must be positive")

	// ErrDiscriminatorMismatch is raised at generation time by
	// DiscriminatedUnion when a tagged generator produces a value whose
	// discriminator field does not carry the expected tag. Spec §7
	// classifies this as a programming error, not a recoverable runtime
	// condition, so it is never caught by the runner's recover guards.
	ErrDiscriminatorMismatch = errors.New("gen: discriminated union value carries the wrong tag")
)

// discardSignal is an internal, unexported panic value: it is how
// FilterGen tells the Property runner "this generation attempt could not
// satisfy its predicate within the internal retry bound" (spec §7's
// Discarded kind) without adding an error return to the Generator
// interface. Runner recovers it in the per-iteration loop and folds it
// into TestStats.TestsDiscarded; nothing outside this module and prop's
// runner ever observes it.
type discardSignal struct{ predicate string }

func (d discardSignal) Error() string {
	return "gen: filter exhausted its retry budget for predicate " + d.predicate
}

// AsDiscard reports whether err is the internal discard signal, and is
// exported only so prop's runner (a different package) can recognize it.
func AsDiscard(err error) bool {
	_, ok := err.(discardSignal)
	return ok
}

// maxFilterAttempts bounds how many consecutive rejections FilterGen will
// absorb within a single Generate call before raising discardSignal. It
// is independent of (and normally much smaller than) Config.DiscardLimit,
// which counts how many times this happens across a whole run.
const maxFilterAttempts = 100

// newDiscardSignal builds the panic value FilterGen raises once it exhausts
// maxFilterAttempts for the given predicate label.
func newDiscardSignal(label string) error { return discardSignal{predicate: label} }
