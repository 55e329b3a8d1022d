package gen

import (
	"testing"

	"github.com/lucaskalb/rapidx/seed"
)

func TestSplitNProducesTheRequestedCountAndAllDistinct(t *testing.T) {
	s := seed.FromNumber(17)
	seeds := splitN(s, 5)
	if len(seeds) != 5 {
		t.Fatalf("splitN(s, 5) returned %d seeds, want 5", len(seeds))
	}
	for i := 0; i < len(seeds); i++ {
		for j := i + 1; j < len(seeds); j++ {
			if seeds[i] == seeds[j] {
				t.Fatalf("splitN produced identical substreams at indices %d and %d", i, j)
			}
		}
	}
}

func TestSplitNIsDeterministic(t *testing.T) {
	s := seed.FromNumber(17)
	a := splitN(s, 4)
	b := splitN(s, 4)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("splitN(s, 4) differed across calls at index %d", i)
		}
	}
}

func TestSplitNZeroReturnsEmpty(t *testing.T) {
	s := seed.FromNumber(1)
	if got := splitN(s, 0); len(got) != 0 {
		t.Fatalf("splitN(s, 0) = %v, want empty", got)
	}
}
