package gen

import (
	"math"

	"github.com/lucaskalb/rapidx/seed"
)

// Int draws an int from r, biased toward r.Origin() by r.Distribution(),
// with the canonical integer shrink sequence (spec §4.D) as its tree of
// candidates. Every child remains within [r.Min, r.Max].
func Int(r Range[int]) Generator[int] {
	return From(func(sz Size, s seed.Seed) Tree[int] {
		f, _ := r.sampleFloat(sz, s)
		v := clampInt(int(math.Round(f)), r.Min, r.Max)
		return integerTree(v, r.Origin())
	})
}

// IntRange is a convenience constructor equivalent to Int(UniformRange(min, max)).
func IntRange(min, max int) Generator[int] {
	return Int(UniformRange(min, max))
}

// Int64 is Int for the int64 width.
func Int64(r Range[int64]) Generator[int64] {
	return From(func(sz Size, s seed.Seed) Tree[int64] {
		f, _ := r.sampleFloat(sz, s)
		v := clampInt(int64(math.Round(f)), r.Min, r.Max)
		return integerTree(v, r.Origin())
	})
}

// Int64Range is a convenience constructor equivalent to Int64(UniformRange(min, max)).
func Int64Range(min, max int64) Generator[int64] {
	return Int64(UniformRange(min, max))
}
