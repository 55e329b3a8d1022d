package gen

import (
	"sort"

	"github.com/lucaskalb/rapidx/seed"
)

// WeightedChoice pairs a generator with its relative selection weight for
// Frequency and WeightedUnion.
type WeightedChoice[T any] struct {
	Weight float64
	Gen    Generator[T]
}

// Weighted builds a WeightedChoice, a small convenience for call sites that
// build the slice inline: gen.Frequency(gen.Weighted(3, a), gen.Weighted(1, b)).
func Weighted[T any](weight float64, g Generator[T]) WeightedChoice[T] {
	return WeightedChoice[T]{Weight: weight, Gen: g}
}

// OneOf picks uniformly among gs. Besides the chosen branch's own shrink
// tree, the root also offers every other branch's root value as an extra
// shrink candidate ("shrink to alternatives", spec §4.D): a property that
// only fails on the third variant can shrink straight to a value drawn
// from that variant instead of only exploring within the branch it
// happened to draw.
func OneOf[T any](gs ...Generator[T]) Generator[T] {
	if len(gs) == 0 {
		panic(ErrEmptyChoice)
	}
	return From(func(sz Size, s seed.Seed) Tree[T] {
		idxSeed, rest := s.Split()
		idx, _ := idxSeed.NextBounded(len(gs))
		return chooseWithAlternatives(sz, rest, gs, idx)
	})
}

// Union is an alias for OneOf kept for parity with spec §6's union(...)
// combinator name.
func Union[T any](gs ...Generator[T]) Generator[T] { return OneOf(gs...) }

// Frequency picks among choices with probability proportional to each
// entry's Weight. Every weight must be positive and at least one choice
// must be given, or Frequency panics with ErrNonPositiveWeight /
// ErrEmptyChoice. Shrinking offers the other branches' root values the
// same way OneOf does.
func Frequency[T any](choices ...WeightedChoice[T]) Generator[T] {
	if len(choices) == 0 {
		panic(ErrEmptyChoice)
	}
	total := 0.0
	gs := make([]Generator[T], len(choices))
	for i, c := range choices {
		if c.Weight <= 0 {
			panic(ErrNonPositiveWeight)
		}
		total += c.Weight
		gs[i] = c.Gen
	}
	return From(func(sz Size, s seed.Seed) Tree[T] {
		drawSeed, rest := s.Split()
		u, _ := drawSeed.NextFloat()
		target := u * total
		idx := len(choices) - 1
		acc := 0.0
		for i, c := range choices {
			acc += c.Weight
			if target < acc {
				idx = i
				break
			}
		}
		return chooseWithAlternatives(sz, rest, gs, idx)
	})
}

// WeightedUnion is Frequency under the name spec §6 gives the union-flavored
// weighted choice; the two combinators share the same selection and
// shrink-to-alternatives mechanics.
func WeightedUnion[T any](choices ...WeightedChoice[T]) Generator[T] {
	return Frequency(choices...)
}

// chooseWithAlternatives runs gs[idx] and appends the root value of every
// other generator in gs as an extra, lazily-computed shrink child.
func chooseWithAlternatives[T any](sz Size, s seed.Seed, gs []Generator[T], idx int) Tree[T] {
	seeds := splitN(s, len(gs))
	chosen := gs[idx].Generate(sz, seeds[idx])
	children := make([]func() Tree[T], 0, chosen.NumChildren()+len(gs)-1)
	for i := 0; i < chosen.NumChildren(); i++ {
		i := i
		children = append(children, func() Tree[T] { return chosen.Child(i) })
	}
	for j := range gs {
		if j == idx {
			continue
		}
		j := j
		children = append(children, func() Tree[T] {
			return Singleton(gs[j].Generate(sz, seeds[j]).Value)
		})
	}
	return WithChildFuncs(chosen.Value, children)
}

// DiscriminatedUnion builds a union of object-shaped variants keyed by a
// discriminator field: variants maps each tag to the generator that should
// run when that tag is selected. Every variant's generated object must
// carry tag at key, or DiscriminatedUnion panics with
// ErrDiscriminatorMismatch — this is the invariant spec §8's
// "discriminated-union tag" property exercises. Selection is uniform over
// the variant map's tags; tag iteration order is stabilized by sorting so
// the same seed always selects the same variant.
func DiscriminatedUnion(key string, variants map[string]Generator[map[string]any]) Generator[map[string]any] {
	if len(variants) == 0 {
		panic(ErrEmptyChoice)
	}
	tags := make([]string, 0, len(variants))
	for tag := range variants {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	gs := make([]Generator[map[string]any], len(tags))
	for i, tag := range tags {
		tag := tag
		gen := variants[tag]
		gs[i] = MapGen(gen, func(obj map[string]any) map[string]any {
			if got, _ := obj[key].(string); got != tag {
				panic(ErrDiscriminatorMismatch)
			}
			return obj
		})
	}
	return OneOf(gs...)
}
