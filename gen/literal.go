package gen

import "github.com/lucaskalb/rapidx/seed"

// Const always yields v and never shrinks.
func Const[T any](v T) Generator[T] {
	return From(func(_ Size, _ seed.Seed) Tree[T] { return Singleton(v) })
}

// Literal is an alias for Const kept for parity with spec §6's
// gen_literal: a fixed value carried through verbatim.
func Literal[T any](v T) Generator[T] { return Const(v) }

// Enum draws uniformly from a fixed set of values. Shrinking tries the
// earlier values in the slice first, mirroring OneOf's "shrink to
// alternatives" behavior for a flat value set.
func Enum[T any](values ...T) Generator[T] {
	if len(values) == 0 {
		panic(ErrEmptyChoice)
	}
	return From(func(_ Size, s seed.Seed) Tree[T] {
		idx, _ := s.NextBounded(len(values))
		children := make([]Tree[T], 0, idx)
		for i := 0; i < idx; i++ {
			children = append(children, Singleton(values[i]))
		}
		return WithChildren(values[idx], children)
	})
}
