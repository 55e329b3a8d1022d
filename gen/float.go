package gen

import (
	"math"

	"github.com/lucaskalb/rapidx/seed"
)

// floatStopRadius is the smallest remaining distance-to-origin spec §4.D
// requires a float shrink to keep halving past; below it, the child is
// considered no longer a meaningful simplification and shrinking stops.
const floatStopRadius = 1e-9

// Float64 draws a float64 from r, shrinking by halving the distance to
// r.Origin() until floatStopRadius is reached.
func Float64(r Range[float64]) Generator[float64] {
	return From(func(sz Size, s seed.Seed) Tree[float64] {
		v, _ := r.sampleFloat(sz, s)
		if v < r.Min {
			v = r.Min
		}
		if v > r.Max {
			v = r.Max
		}
		return floatTree(v, r.Origin())
	})
}

// Float64Range is a convenience constructor equivalent to Float64(UniformRange(min, max)).
func Float64Range(min, max float64) Generator[float64] {
	return Float64(UniformRange(min, max))
}

// Float32 is Float64 for the float32 width.
func Float32(r Range[float32]) Generator[float32] {
	return From(func(sz Size, s seed.Seed) Tree[float32] {
		v, _ := r.sampleFloat(sz, s)
		if v < float64(r.Min) {
			v = float64(r.Min)
		}
		if v > float64(r.Max) {
			v = float64(r.Max)
		}
		return floatTree32(float32(v), r.Origin())
	})
}

// Float32Range is a convenience constructor equivalent to Float32(UniformRange(min, max)).
func Float32Range(min, max float32) Generator[float32] {
	return Float32(UniformRange(min, max))
}

// floatTree builds the halving shrink tree for a float64 value towards
// origin, stopping once the remaining distance is at most floatStopRadius.
func floatTree(v, origin float64) Tree[float64] {
	if v == origin || math.Abs(v-origin) <= floatStopRadius {
		return Singleton(v)
	}
	mid := origin + (v-origin)/2
	children := []func() Tree[float64]{
		func() Tree[float64] { return floatTree(origin, origin) },
		func() Tree[float64] { return floatTree(mid, origin) },
	}
	return WithChildFuncs(v, children)
}

// floatTree32 builds the same halving shrink tree at float32 precision.
func floatTree32(v, origin float32) Tree[float32] {
	if v == origin || math.Abs(float64(v-origin)) <= floatStopRadius {
		return Singleton(v)
	}
	mid := origin + (v-origin)/2
	children := []func() Tree[float32]{
		func() Tree[float32] { return floatTree32(origin, origin) },
		func() Tree[float32] { return floatTree32(mid, origin) },
	}
	return WithChildFuncs(v, children)
}
