package gen

import (
	"math"

	"github.com/lucaskalb/rapidx/seed"
)

// Array draws a []T whose length is uniform-ish between min and max,
// scaled by the current size the way numeric ranges are (spec §6's
// gen_array({min, max})): small sizes favor shorter slices, and the full
// [min,max] span opens up as size reaches ConventionalSizeLimit.
//
// Shrinking prioritizes removing elements over simplifying them (spec
// §4.D / §8's "array length bounds" property): children first offer
// shorter slices with whole chunks removed, in decreasing chunk size, and
// only after all of those do they offer slices with a single element
// shrunk in place.
func Array[T any](elem Generator[T], min, max int) Generator[[]T] {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	return From(func(sz Size, s seed.Seed) Tree[[]T] {
		lenSeed, rest := s.Split()
		n := sampleLength(sz, lenSeed, min, max)
		elemSeeds := splitN(rest, n)
		trees := make([]Tree[T], n)
		for i := 0; i < n; i++ {
			trees[i] = elem.Generate(sz, elemSeeds[i])
		}
		return arrayTree(trees, min)
	})
}

// ArrayExact draws a []T of exactly n elements. Because min == max == n,
// arrayTree's length-reduction step finds nothing to remove, so shrinking
// falls straight to per-element shrinks, matching spec's "array-like,
// fixed length" gen_array({exact}) mode.
func ArrayExact[T any](elem Generator[T], n int) Generator[[]T] {
	return Array(elem, n, n)
}

// Slice is Array under the name Go callers reach for more often.
func Slice[T any](elem Generator[T], min, max int) Generator[[]T] { return Array(elem, min, max) }

func sampleLength(sz Size, s seed.Seed, min, max int) int {
	if max == min {
		return min
	}
	span := max - min
	factor := sizeFactor(sz)
	effectiveSpan := int(math.Round(float64(span) * factor))
	offset, _ := s.NextBounded(effectiveSpan + 1)
	return min + offset
}

func arrayTree[T any](elemsTrees []Tree[T], min int) Tree[[]T] {
	values := make([]T, len(elemsTrees))
	for i, t := range elemsTrees {
		values[i] = t.Value
	}
	children := make([]func() Tree[[]T], 0)
	children = append(children, removalChildren(elemsTrees, min)...)
	children = append(children, elementwiseChildren(elemsTrees, min)...)
	return WithChildFuncs(values, children)
}

// removalChildren yields candidates with contiguous chunks dropped,
// trying decreasing chunk sizes (len, len/2, len/4, ...) the way
// Hedgehog's list shrinker does, skipping any chunk size that would take
// the slice below min.
func removalChildren[T any](elemsTrees []Tree[T], min int) []func() Tree[[]T] {
	n := len(elemsTrees)
	var out []func() Tree[[]T]
	for k := n; k > 0; k /= 2 {
		if n-k >= min {
			for start := 0; start+k <= n; start += k {
				start, k := start, k
				out = append(out, func() Tree[[]T] {
					kept := make([]Tree[T], 0, n-k)
					kept = append(kept, elemsTrees[:start]...)
					kept = append(kept, elemsTrees[start+k:]...)
					return arrayTree(kept, min)
				})
			}
		}
		if k == 1 {
			break
		}
	}
	return out
}

// elementwiseChildren yields candidates where exactly one position is
// replaced by one of that element's own shrink candidates, length held
// fixed.
func elementwiseChildren[T any](elemsTrees []Tree[T], min int) []func() Tree[[]T] {
	var out []func() Tree[[]T]
	for i := range elemsTrees {
		i, t := i, elemsTrees[i]
		for c := 0; c < t.NumChildren(); c++ {
			c := c
			out = append(out, func() Tree[[]T] {
				next := append([]Tree[T](nil), elemsTrees...)
				next[i] = t.Child(c)
				return arrayTree(next, min)
			})
		}
	}
	return out
}
