package gen

import "github.com/lucaskalb/rapidx/seed"

// Bool draws a uniformly distributed boolean, with false treated as
// simpler than true: true has false as its one shrink candidate, and
// false does not shrink.
func Bool() Generator[bool] {
	return From(func(_ Size, s seed.Seed) Tree[bool] {
		v, _ := s.NextBool()
		if !v {
			return Singleton(false)
		}
		return WithChildren(true, []Tree[bool]{Singleton(false)})
	})
}
