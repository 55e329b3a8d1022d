package gen

import "golang.org/x/exp/constraints"

// integerShrinkChildren builds the canonical integer shrink sequence
// described in spec §4.D: the origin itself, then a bisection series that
// halves the remaining distance to v on each step, then a final one-step
// move from v towards origin. Every entry lies between origin and v
// inclusive, so it is automatically within whatever [Min, Max] bounded
// both of them.
func integerShrinkChildren[N constraints.Integer](v, origin N) []N {
	if v == origin {
		return nil
	}
	seen := map[N]bool{v: true}
	var out []N
	push := func(x N) {
		if seen[x] {
			return
		}
		seen[x] = true
		out = append(out, x)
	}

	push(origin)
	cur := origin
	for i := 0; i < 64 && cur != v; i++ {
		next := midpointTowardsInt(cur, v)
		if next == cur {
			break
		}
		push(next)
		cur = next
	}
	push(stepTowardsInt(v, origin))
	return out
}

// midpointTowardsInt bisects the distance from a to b, rounding towards a,
// except that a single unit of remaining distance still moves one unit.
// The distance is always taken as larger minus smaller, so unsigned types
// do not wrap when b lies below a.
func midpointTowardsInt[N constraints.Integer](a, b N) N {
	if a == b {
		return a
	}
	if b > a {
		step := (b - a) / 2
		if step == 0 {
			step = 1
		}
		return a + step
	}
	step := (a - b) / 2
	if step == 0 {
		step = 1
	}
	return a - step
}

// stepTowardsInt moves a by one unit towards b.
func stepTowardsInt[N constraints.Integer](a, b N) N {
	if a == b {
		return a
	}
	if b > a {
		return a + 1
	}
	return a - 1
}

// integerTree recursively builds the shrink tree for an integer value v
// shrinking towards origin. Each child is strictly closer to origin than
// v (or equal to it), so the recursion is well-founded.
func integerTree[N constraints.Integer](v, origin N) Tree[N] {
	seq := integerShrinkChildren(v, origin)
	children := make([]func() Tree[N], len(seq))
	for i, c := range seq {
		c := c
		children[i] = func() Tree[N] { return integerTree(c, origin) }
	}
	return WithChildFuncs(v, children)
}

// clampInt constrains x to [lo, hi].
func clampInt[N constraints.Integer](x, lo, hi N) N {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
