package gen

import (
	"testing"

	"github.com/lucaskalb/rapidx/seed"
)

func TestBoolProducesBothValuesAcrossSeeds(t *testing.T) {
	g := Bool()
	sawTrue, sawFalse := false, false
	for n := uint64(0); n < 50; n++ {
		tr := g.Generate(Of(0), seed.FromNumber(n))
		if tr.Value {
			sawTrue = true
		} else {
			sawFalse = true
		}
	}
	if !sawTrue || !sawFalse {
		t.Fatalf("Bool() did not produce both values: sawTrue=%v sawFalse=%v", sawTrue, sawFalse)
	}
}

func TestBoolTrueShrinksToFalseAndFalseNeverShrinks(t *testing.T) {
	g := Bool()
	for n := uint64(0); n < 50; n++ {
		tr := g.Generate(Of(0), seed.FromNumber(n))
		if tr.Value {
			if tr.NumChildren() != 1 || tr.Child(0).Value != false {
				t.Fatalf("true must shrink to exactly [false], got %v children", tr.NumChildren())
			}
		} else if tr.NumChildren() != 0 {
			t.Fatalf("false must never shrink, got %d children", tr.NumChildren())
		}
	}
}
