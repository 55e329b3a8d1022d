package prop

import (
	"github.com/google/uuid"

	"github.com/lucaskalb/rapidx/gen"
)

// classifier labels a value, contributing to TestStats.Labels when its
// predicate matches. An empty label from Classify is never recorded.
type classifier[T any] struct {
	label string
	pred  func(T) bool
}

// Property pairs a generator and a predicate, plus optional classifiers,
// a diagnostic name, and explicit examples tried before any random
// generation (spec §4.E). Property is built up with chained With*-style
// calls and is immutable: every method returns a new Property.
type Property[T any] struct {
	name       string
	gen        gen.Generator[T]
	pred       func(T) bool
	classifier []classifier[T]
	examples   []T
}

// ForAll builds a Property from a generator and a predicate. The
// property is given a short random diagnostic tag immediately via
// uuid.NewString so anonymous properties are still distinguishable from
// one another in logs and failure messages; this tag never touches
// generation and has no effect on reproducibility.
func ForAll[T any](g gen.Generator[T], pred func(T) bool) Property[T] {
	return Property[T]{
		name: "property-" + uuid.NewString()[:8],
		gen:  g,
		pred: pred,
	}
}

// Named returns a copy of p with an explicit diagnostic name, overriding
// the random tag ForAll assigned.
func (p Property[T]) Named(name string) Property[T] {
	p.name = name
	return p
}

// Classify returns a copy of p with an additional classifier: whenever
// pred(value) holds for a generated test case, label is recorded in the
// result's label frequency table.
func (p Property[T]) Classify(label string, pred func(T) bool) Property[T] {
	p.classifier = append(append([]classifier[T](nil), p.classifier...), classifier[T]{label: label, pred: pred})
	return p
}

// WithExample returns a copy of p with v added to the list of explicit
// examples tried, in order, before any randomly generated test case.
// Examples do not consume the run's test-iteration budget.
func (p Property[T]) WithExample(v T) Property[T] {
	p.examples = append(append([]T(nil), p.examples...), v)
	return p
}

// Name reports the property's diagnostic name.
func (p Property[T]) Name() string { return p.name }
