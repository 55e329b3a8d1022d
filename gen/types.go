// Package gen provides generators for property-based testing in Go. Every
// generator is a pure function of (Size, Seed) that returns a Tree of
// candidate values: the root is what the property runner tests, and the
// tree's children are the shrink candidates tried if it fails. There is
// no separate "shrink" function — combinators compose generators, and
// shrinking comes along for free via Tree's Map/Bind.
package gen

import "github.com/lucaskalb/rapidx/seed"

// Generator is the public contract for all generators: a deterministic
// mapping from (Size, Seed) to a Tree of candidate values. Given equal
// inputs it must return a structurally identical tree.
type Generator[T any] interface {
	Generate(sz Size, s seed.Seed) Tree[T]
}

// GenFunc adapts a plain function to the Generator interface.
type GenFunc[T any] struct {
	fn func(Size, seed.Seed) Tree[T]
}

// Generate implements Generator for GenFunc.
func (g GenFunc[T]) Generate(sz Size, s seed.Seed) Tree[T] { return g.fn(sz, s) }

// From builds a Generator from a closure; the common way to define a new
// primitive generator.
func From[T any](fn func(Size, seed.Seed) Tree[T]) Generator[T] {
	return GenFunc[T]{fn: fn}
}
