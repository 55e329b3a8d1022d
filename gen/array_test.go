package gen

import (
	"testing"

	"github.com/lucaskalb/rapidx/seed"
)

func TestArrayLengthStaysWithinBounds(t *testing.T) {
	g := Array(IntRange(0, 10), 2, 5)
	for n := uint64(0); n < 100; n++ {
		tr := g.Generate(Of(100), seed.FromNumber(n))
		if len(tr.Value) < 2 || len(tr.Value) > 5 {
			t.Fatalf("Array(2,5) produced length %d, outside [2, 5]", len(tr.Value))
		}
	}
}

func TestArrayShrinksNeverViolateMinLength(t *testing.T) {
	g := Array(IntRange(0, 10), 1, 6)
	tr := g.Generate(Of(100), seed.FromNumber(42))
	for _, xs := range tr.Shrinks() {
		if len(xs) < 1 {
			t.Fatalf("shrink candidate has length %d, below min 1", len(xs))
		}
	}
}

func TestArrayExactNeverChangesLength(t *testing.T) {
	g := ArrayExact(IntRange(0, 10), 4)
	tr := g.Generate(Of(100), seed.FromNumber(5))
	if len(tr.Value) != 4 {
		t.Fatalf("ArrayExact(4) produced length %d, want 4", len(tr.Value))
	}
	for _, xs := range tr.Shrinks() {
		if len(xs) != 4 {
			t.Errorf("ArrayExact shrink changed length to %d, want 4", len(xs))
		}
	}
}

func TestRemovalChildrenPrioritizeLengthOverElements(t *testing.T) {
	trees := []Tree[int]{integerTree(9, 0), integerTree(9, 0), integerTree(9, 0), integerTree(9, 0)}
	root := arrayTree(trees, 0)
	if root.NumChildren() == 0 {
		t.Fatal("expected at least one shrink candidate")
	}
	first := root.Child(0)
	if len(first.Value) >= len(root.Value) {
		t.Errorf("first shrink candidate should be a length reduction: got length %d from parent length %d",
			len(first.Value), len(root.Value))
	}
}
