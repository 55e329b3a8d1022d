package gen

import "github.com/lucaskalb/rapidx/seed"

// noneProbabilityFloor and noneProbabilitySlope implement spec §6's
// gen_optional rule: the chance of drawing none starts high at small sizes
// (easier to find the nil/empty case early) and falls off linearly as size
// grows, never dropping below the floor.
const (
	noneProbabilityFloor = 0.05
	noneProbabilityBase  = 0.5
	noneProbabilitySlope = 0.004
)

func noneProbability(sz Size) float64 {
	p := noneProbabilityBase - float64(sz)*noneProbabilitySlope
	if p < noneProbabilityFloor {
		return noneProbabilityFloor
	}
	return p
}

// Optional draws *T, producing nil with noneProbability(size) and a
// pointer to an inner-generator value otherwise. A present value shrinks
// both towards nil and along the inner generator's own shrink tree, with
// nil tried first (spec §4.D: "simplification prefers removing the value
// entirely before simplifying it").
func Optional[T any](inner Generator[T]) Generator[*T] {
	return From(func(sz Size, s seed.Seed) Tree[*T] {
		coin, rest := s.Split()
		u, _ := coin.NextFloat()
		if u < noneProbability(sz) {
			return Singleton[*T](nil)
		}
		t := Map(inner.Generate(sz, rest), func(v T) *T {
			v := v
			return &v
		})
		children := make([]func() Tree[*T], 0, t.NumChildren()+1)
		children = append(children, func() Tree[*T] { return Singleton[*T](nil) })
		for i := 0; i < t.NumChildren(); i++ {
			i := i
			children = append(children, func() Tree[*T] { return t.Child(i) })
		}
		return WithChildFuncs(t.Value, children)
	})
}

// Nullable is an alias for Optional, for callers who think in terms of a
// nullable field rather than an optional value.
func Nullable[T any](inner Generator[T]) Generator[*T] { return Optional(inner) }
