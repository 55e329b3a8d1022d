package gen

import (
	"reflect"
	"testing"
)

func TestSingletonHasNoChildren(t *testing.T) {
	tr := Singleton(5)
	if tr.NumChildren() != 0 {
		t.Errorf("Singleton(5).NumChildren() = %d, want 0", tr.NumChildren())
	}
	if tr.Value != 5 {
		t.Errorf("Singleton(5).Value = %d, want 5", tr.Value)
	}
}

func TestWithChildrenForcesEagerly(t *testing.T) {
	tr := WithChildren(10, []Tree[int]{Singleton(5), Singleton(0)})
	if tr.NumChildren() != 2 {
		t.Fatalf("NumChildren() = %d, want 2", tr.NumChildren())
	}
	if tr.Child(0).Value != 5 || tr.Child(1).Value != 0 {
		t.Errorf("children = [%d, %d], want [5, 0]", tr.Child(0).Value, tr.Child(1).Value)
	}
}

func TestMapPreservesShape(t *testing.T) {
	tr := WithChildren(10, []Tree[int]{Singleton(5), Singleton(0)})
	mapped := Map(tr, func(n int) string { return string(rune('a' + n%26)) })

	if mapped.NumChildren() != tr.NumChildren() {
		t.Fatalf("Map changed child count: got %d, want %d", mapped.NumChildren(), tr.NumChildren())
	}
	if mapped.Value != "k" {
		t.Errorf("Map(10) = %q, want %q", mapped.Value, "k")
	}
}

func TestBindOuterChildrenComeBeforeInner(t *testing.T) {
	// t has value 2 with one child (value 1).
	inputTree := WithChildren(2, []Tree[int]{Singleton(1)})

	// f produces a tree whose own children are "outer" shrinks.
	f := func(n int) Tree[string] {
		return WithChildren("outer-root", []Tree[string]{Singleton("outer-child")})
	}

	bound := Bind(inputTree, f)
	if bound.Value != "outer-root" {
		t.Fatalf("Bind value = %q, want %q", bound.Value, "outer-root")
	}
	if bound.NumChildren() != 2 {
		t.Fatalf("Bind NumChildren() = %d, want 2 (1 outer + 1 inner)", bound.NumChildren())
	}
	if bound.Child(0).Value != "outer-child" {
		t.Errorf("first child = %q, want the outer shrink %q", bound.Child(0).Value, "outer-child")
	}
	// The second child rebinds f over the input's own child (value 1).
	if bound.Child(1).Value != "outer-root" {
		t.Errorf("second child value = %q, want %q (f re-applied to the input's shrink)", bound.Child(1).Value, "outer-root")
	}
}

func TestFilterDropsRootFailure(t *testing.T) {
	tr := Singleton(3)
	_, ok := Filter(tr, func(n int) bool { return n%2 == 0 })
	if ok {
		t.Error("Filter should report ok=false when the root itself fails the predicate")
	}
}

func TestFilterPrunesFailingChildrenOnly(t *testing.T) {
	tr := WithChildren(10, []Tree[int]{Singleton(4), Singleton(3), Singleton(8)})
	filtered, ok := Filter(tr, func(n int) bool { return n%2 == 0 })
	if !ok {
		t.Fatal("root satisfies predicate, Filter should report ok=true")
	}
	if filtered.NumChildren() != 2 {
		t.Fatalf("NumChildren() = %d, want 2 (the odd child dropped)", filtered.NumChildren())
	}
	for i := 0; i < filtered.NumChildren(); i++ {
		if filtered.Child(i).Value%2 != 0 {
			t.Errorf("surviving child %d has odd value %d", i, filtered.Child(i).Value)
		}
	}
}

func TestShrinksEnumeratesBreadthFirst(t *testing.T) {
	tr := WithChildren(10, []Tree[int]{
		WithChildren(5, []Tree[int]{Singleton(1)}),
		Singleton(0),
	})
	got := tr.Shrinks()
	want := []int{5, 0, 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Shrinks() = %v, want %v", got, want)
	}
}

func TestExpandRespectsDepth(t *testing.T) {
	tr := WithChildren(10, []Tree[int]{
		WithChildren(5, []Tree[int]{Singleton(1)}),
	})
	if got := tr.Expand(0); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("Expand(0) = %v, want [10]", got)
	}
	if got := tr.Expand(1); !reflect.DeepEqual(got, []int{10, 5}) {
		t.Errorf("Expand(1) = %v, want [10, 5]", got)
	}
	if got := tr.Expand(2); !reflect.DeepEqual(got, []int{10, 5, 1}) {
		t.Errorf("Expand(2) = %v, want [10, 5, 1]", got)
	}
}
