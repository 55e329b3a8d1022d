package gen

import (
	"sort"

	"github.com/lucaskalb/rapidx/seed"
)

// Object draws a map[string]any by running one generator per named field
// (spec §6's gen_object({k: gen})). Field generators are run against
// seeds split from a deterministic per-field ordering (keys sorted), so
// the same top-level seed always reproduces the same object regardless
// of map iteration order.
//
// Shrinking tries shrinking one field at a time, in key order, holding
// every other field fixed — the direct analogue of Array's elementwise
// shrink step applied to a fixed set of named slots instead of indices.
func Object(fields map[string]Generator[any]) Generator[map[string]any] {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return From(func(sz Size, s seed.Seed) Tree[map[string]any] {
		seeds := splitN(s, len(keys))
		trees := make([]Tree[any], len(keys))
		for i, k := range keys {
			trees[i] = fields[k].Generate(sz, seeds[i])
		}
		return objectTree(keys, trees)
	})
}

func objectTree(keys []string, trees []Tree[any]) Tree[map[string]any] {
	value := make(map[string]any, len(keys))
	for i, k := range keys {
		value[k] = trees[i].Value
	}
	var children []func() Tree[map[string]any]
	for i := range keys {
		i, t := i, trees[i]
		for c := 0; c < t.NumChildren(); c++ {
			c := c
			children = append(children, func() Tree[map[string]any] {
				next := append([]Tree[any](nil), trees...)
				next[i] = t.Child(c)
				return objectTree(keys, next)
			})
		}
	}
	return WithChildFuncs(value, children)
}
