package gen

import (
	"math"

	"github.com/lucaskalb/rapidx/seed"
)

// Uint draws a uint from r the same way Int does.
func Uint(r Range[uint]) Generator[uint] {
	return From(func(sz Size, s seed.Seed) Tree[uint] {
		f, _ := r.sampleFloat(sz, s)
		v := clampInt(uint(math.Round(f)), r.Min, r.Max)
		return integerTree(v, r.Origin())
	})
}

// UintRange is a convenience constructor equivalent to Uint(UniformRange(min, max)).
func UintRange(min, max uint) Generator[uint] {
	return Uint(UniformRange(min, max))
}

// Uint64 is Uint for the uint64 width.
func Uint64(r Range[uint64]) Generator[uint64] {
	return From(func(sz Size, s seed.Seed) Tree[uint64] {
		f, _ := r.sampleFloat(sz, s)
		v := clampInt(uint64(math.Round(f)), r.Min, r.Max)
		return integerTree(v, r.Origin())
	})
}

// Uint64Range is a convenience constructor equivalent to Uint64(UniformRange(min, max)).
func Uint64Range(min, max uint64) Generator[uint64] {
	return Uint64(UniformRange(min, max))
}
