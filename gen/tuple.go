package gen

import "github.com/lucaskalb/rapidx/seed"

// Pair is the result of Tuple2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the result of Tuple3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple2 runs ga and gb against independently split seeds and shrinks
// one component at a time, the same elementwise discipline Object and
// Array use (spec §6's gen_tuple(...), specialized to Go's lack of
// variadic generics: arity is given by the concrete helper you call).
func Tuple2[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return From(func(sz Size, s seed.Seed) Tree[Pair[A, B]] {
		sa, sb := s.Split()
		ta := ga.Generate(sz, sa)
		tb := gb.Generate(sz, sb)
		return pairTree(ta, tb)
	})
}

func pairTree[A, B any](ta Tree[A], tb Tree[B]) Tree[Pair[A, B]] {
	value := Pair[A, B]{First: ta.Value, Second: tb.Value}
	children := make([]func() Tree[Pair[A, B]], 0, ta.NumChildren()+tb.NumChildren())
	for i := 0; i < ta.NumChildren(); i++ {
		i := i
		children = append(children, func() Tree[Pair[A, B]] { return pairTree(ta.Child(i), tb) })
	}
	for i := 0; i < tb.NumChildren(); i++ {
		i := i
		children = append(children, func() Tree[Pair[A, B]] { return pairTree(ta, tb.Child(i)) })
	}
	return WithChildFuncs(value, children)
}

// Tuple3 is Tuple2 generalized to three independently shrinking components.
func Tuple3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Triple[A, B, C]] {
	return From(func(sz Size, s seed.Seed) Tree[Triple[A, B, C]] {
		s1, rest := s.Split()
		s2, s3 := rest.Split()
		ta := ga.Generate(sz, s1)
		tb := gb.Generate(sz, s2)
		tc := gc.Generate(sz, s3)
		return tripleTree(ta, tb, tc)
	})
}

func tripleTree[A, B, C any](ta Tree[A], tb Tree[B], tc Tree[C]) Tree[Triple[A, B, C]] {
	value := Triple[A, B, C]{First: ta.Value, Second: tb.Value, Third: tc.Value}
	children := make([]func() Tree[Triple[A, B, C]], 0, ta.NumChildren()+tb.NumChildren()+tc.NumChildren())
	for i := 0; i < ta.NumChildren(); i++ {
		i := i
		children = append(children, func() Tree[Triple[A, B, C]] { return tripleTree(ta.Child(i), tb, tc) })
	}
	for i := 0; i < tb.NumChildren(); i++ {
		i := i
		children = append(children, func() Tree[Triple[A, B, C]] { return tripleTree(ta, tb.Child(i), tc) })
	}
	for i := 0; i < tc.NumChildren(); i++ {
		i := i
		children = append(children, func() Tree[Triple[A, B, C]] { return tripleTree(ta, tb, tc.Child(i)) })
	}
	return WithChildFuncs(value, children)
}
