package prop

import "github.com/lucaskalb/rapidx/seed"

// TestCase carries everything needed to reproduce a single iteration: the
// generated value, the Size it was drawn at, and the Seed that drew it.
// (seed.State(), seed.Gamma(), size) is the full replay triple spec §6
// requires failure messages to report verbatim.
type TestCase[T any] struct {
	Value T
	Size  int
	Seed  seed.Seed
}

// TestStats accumulates counters across a run: how many iterations
// actually ran, how many generations were discarded by a filter, how
// many shrink steps the descent took, and a frequency table of every
// label a classifier attached to a test case.
type TestStats struct {
	TestsRun       int
	TestsDiscarded int
	ShrinkSteps    int
	Labels         map[string]int
}

func newStats() TestStats {
	return TestStats{Labels: make(map[string]int)}
}

func (s *TestStats) addLabel(label string) {
	if label == "" {
		return
	}
	if s.Labels == nil {
		s.Labels = make(map[string]int)
	}
	s.Labels[label]++
}
