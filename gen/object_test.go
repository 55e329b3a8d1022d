package gen

import (
	"testing"

	"github.com/lucaskalb/rapidx/seed"
)

func TestObjectProducesEveryField(t *testing.T) {
	g := Object(map[string]Generator[any]{
		"name": MapGen(StringAlpha(3, 6), func(s string) any { return s }),
		"age":  MapGen(IntRange(0, 100), func(n int) any { return n }),
	})
	tr := g.Generate(Of(50), seed.FromNumber(1))
	if _, ok := tr.Value["name"]; !ok {
		t.Fatalf("object missing field %q: %v", "name", tr.Value)
	}
	if _, ok := tr.Value["age"]; !ok {
		t.Fatalf("object missing field %q: %v", "age", tr.Value)
	}
}

func TestObjectIsDeterministicRegardlessOfFieldMapIterationOrder(t *testing.T) {
	build := func() Generator[map[string]any] {
		return Object(map[string]Generator[any]{
			"a": MapGen(IntRange(0, 10), func(n int) any { return n }),
			"b": MapGen(IntRange(0, 10), func(n int) any { return n }),
			"c": MapGen(IntRange(0, 10), func(n int) any { return n }),
		})
	}
	first := build().Generate(Of(20), seed.FromNumber(7))
	second := build().Generate(Of(20), seed.FromNumber(7))
	for _, k := range []string{"a", "b", "c"} {
		if first.Value[k] != second.Value[k] {
			t.Fatalf("field %q differed across identical (Size, Seed): %v vs %v", k, first.Value[k], second.Value[k])
		}
	}
}

func TestObjectShrinksOneFieldAtATimeHoldingOthersFixed(t *testing.T) {
	g := Object(map[string]Generator[any]{
		"x": MapGen(IntRange(0, 1000), func(n int) any { return n }),
		"y": MapGen(IntRange(0, 1000), func(n int) any { return n }),
	})
	tr := g.Generate(Of(100), seed.FromNumber(3))
	if tr.NumChildren() == 0 {
		t.Skip("root value had no shrink candidates for this seed")
	}
	child := tr.Child(0)
	changed := 0
	for _, k := range []string{"x", "y"} {
		if tr.Value[k] != child.Value[k] {
			changed++
		}
	}
	if changed > 1 {
		t.Fatalf("expected at most one field to change per shrink step, got %d: parent=%v child=%v", changed, tr.Value, child.Value)
	}
}
