package gen

import (
	"testing"

	"github.com/lucaskalb/rapidx/seed"
)

func TestOneOfPanicsOnEmptyChoice(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrEmptyChoice {
			t.Errorf("recover() = %v, want %v", r, ErrEmptyChoice)
		}
	}()
	OneOf[int]()
}

func TestOneOfAlwaysProducesOneOfTheGivenGenerators(t *testing.T) {
	g := OneOf(Const(1), Const(2), Const(3))
	seen := map[int]bool{}
	for n := uint64(0); n < 50; n++ {
		tr := g.Generate(Of(10), seed.FromNumber(n))
		if tr.Value != 1 && tr.Value != 2 && tr.Value != 3 {
			t.Fatalf("OneOf produced %d, want one of {1,2,3}", tr.Value)
		}
		seen[tr.Value] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected to observe more than one branch across 50 draws, saw %v", seen)
	}
}

func TestOneOfOffersOtherBranchesAsShrinkCandidates(t *testing.T) {
	g := OneOf(Const(1), Const(2), Const(3))
	tr := g.Generate(Of(10), seed.FromNumber(1))
	shrinks := tr.Shrinks()
	found := map[int]bool{}
	for _, v := range shrinks {
		found[v] = true
	}
	for _, want := range []int{1, 2, 3} {
		if want != tr.Value && !found[want] {
			t.Errorf("expected alternative root value %d among shrink candidates %v", want, shrinks)
		}
	}
}

func TestFrequencyPanicsOnNonPositiveWeight(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrNonPositiveWeight {
			t.Errorf("recover() = %v, want %v", r, ErrNonPositiveWeight)
		}
	}()
	Frequency(Weighted(0.0, Const(1)))
}

func TestFrequencyPanicsOnEmptyChoice(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrEmptyChoice {
			t.Errorf("recover() = %v, want %v", r, ErrEmptyChoice)
		}
	}()
	Frequency[int]()
}

func TestFrequencyFavorsHeavierWeight(t *testing.T) {
	g := Frequency(Weighted(99.0, Const(1)), Weighted(1.0, Const(2)))
	count1 := 0
	for n := uint64(0); n < 200; n++ {
		tr := g.Generate(Of(10), seed.FromNumber(n))
		if tr.Value == 1 {
			count1++
		}
	}
	if count1 < 150 {
		t.Errorf("expected heavily-weighted branch to dominate, got %d/200", count1)
	}
}

func TestDiscriminatedUnionPanicsOnTagMismatch(t *testing.T) {
	variants := map[string]Generator[map[string]any]{
		"a": Const(map[string]any{"type": "wrong-tag"}),
	}
	g := DiscriminatedUnion("type", variants)

	defer func() {
		if r := recover(); r != ErrDiscriminatorMismatch {
			t.Errorf("recover() = %v, want %v", r, ErrDiscriminatorMismatch)
		}
	}()
	g.Generate(Of(10), seed.FromNumber(1))
}

func TestDiscriminatedUnionProducesExpectedTag(t *testing.T) {
	variants := map[string]Generator[map[string]any]{
		"dog": Const(map[string]any{"type": "dog", "legs": 4}),
		"bird": Const(map[string]any{"type": "bird", "legs": 2}),
	}
	g := DiscriminatedUnion("type", variants)
	for n := uint64(0); n < 20; n++ {
		tr := g.Generate(Of(10), seed.FromNumber(n))
		tag, _ := tr.Value["type"].(string)
		if tag != "dog" && tag != "bird" {
			t.Fatalf("produced object with tag %q, want dog or bird", tag)
		}
	}
}
