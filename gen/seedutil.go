package gen

import "github.com/lucaskalb/rapidx/seed"

// splitN derives n independent, reproducible substreams from s. Used by
// combinators that need more sub-seeds than a single Split call, e.g. one
// per branch of a union/choice generator.
func splitN(s seed.Seed, n int) []seed.Seed {
	out := make([]seed.Seed, n)
	cur := s
	for i := 0; i < n; i++ {
		var left seed.Seed
		left, cur = cur.Split()
		out[i] = left
	}
	return out
}
