package gen

import "github.com/lucaskalb/rapidx/seed"

// MapGen applies f to every value a generator produces, mapping its whole
// shrink tree along with it (spec §4.D: "shrinking a mapped value is the
// map of the underlying shrink sequence").
func MapGen[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return From(func(sz Size, s seed.Seed) Tree[B] {
		return Map(g.Generate(sz, s), f)
	})
}

// BindGen is the monadic bind: f's generator depends on the value g
// produced. Seeds for g and f(v) come from independently splitting the
// incoming seed, so the two draws don't correlate. Shrinking explores
// f(v)'s own shrinks first (outer), then re-applies f to shrinks of v
// (inner) — see Tree.Bind and spec §4.D/§9.
func BindGen[A, B any](g Generator[A], f func(A) Generator[B]) Generator[B] {
	return From(func(sz Size, s seed.Seed) Tree[B] {
		s1, s2 := s.Split()
		ta := g.Generate(sz, s1)
		return Bind(ta, func(a A) Tree[B] {
			return f(a).Generate(sz, s2)
		})
	})
}

// FilterGen keeps only values satisfying pred, retrying internally up to
// maxFilterAttempts times before raising the internal discard signal
// (spec §4.D/§7). The root and every shrink candidate that survives are
// guaranteed to satisfy pred (spec §8's filter-validity property), since
// the whole tree is run back through gen.Filter before being returned.
func FilterGen[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return From(func(sz Size, s seed.Seed) Tree[T] {
		cur := s
		for attempt := 0; attempt < maxFilterAttempts; attempt++ {
			var draw, next seed.Seed
			draw, next = cur.Split()
			cur = next
			t := g.Generate(sz, draw)
			if filtered, ok := Filter(t, pred); ok {
				return filtered
			}
		}
		panic(newDiscardSignal("FilterGen"))
	})
}

// Sized gives a generator access to the current Size budget, the way
// spec's gen_sized(f) does: f receives sz and returns the generator to
// actually run.
func Sized[T any](f func(Size) Generator[T]) Generator[T] {
	return From(func(sz Size, s seed.Seed) Tree[T] {
		return f(sz).Generate(sz, s)
	})
}
