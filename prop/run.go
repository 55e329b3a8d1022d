package prop

import (
	"fmt"

	"github.com/lucaskalb/rapidx/gen"
	"github.com/lucaskalb/rapidx/seed"
)

// Run drives the property through cfg's limits starting from s, following
// spec §4.E's algorithm exactly: explicit examples first (they don't
// consume the iteration budget), then up to cfg.TestLimit randomly
// generated iterations with Size growing linearly towards cfg.SizeLimit,
// splitting the seed once per iteration so every test is independently
// reproducible. The first failing case enters a greedy depth-first
// shrink descent bounded by cfg.ShrinkLimit.
func (p Property[T]) Run(cfg Config, s seed.Seed) TestResult[T] {
	stats := newStats()

	for _, example := range p.examples {
		p.applyClassifiers(example, &stats)
		if !evalPredicate(p.pred, example, false) {
			tc := TestCase[T]{Value: example, Size: 0, Seed: s}
			return TestResult[T]{
				Outcome:         Failed,
				Stats:           stats,
				OriginalFailure: tc,
				Counterexample:  tc,
			}
		}
	}

	cur := s
	for i := 0; i < cfg.testLimit; i++ {
		size := iterationSize(i, cfg.testLimit, cfg.sizeLimit)
		testSeed, nextSeed := cur.Split()
		cur = nextSeed

		tree, discarded := safeGenerate(p.gen, gen.Of(size), testSeed)
		if discarded {
			stats.TestsDiscarded++
			if stats.TestsDiscarded >= cfg.discardLimit {
				return TestResult[T]{Outcome: GaveUp, Stats: stats, Reason: "discard limit exceeded"}
			}
			continue
		}

		stats.TestsRun++
		p.applyClassifiers(tree.Value, &stats)

		if evalPredicate(p.pred, tree.Value, false) {
			continue
		}

		original := TestCase[T]{Value: tree.Value, Size: size, Seed: testSeed}
		counterexample, path, steps := shrinkDescent(tree, p.pred, cfg.shrinkLimit, size, testSeed)
		stats.ShrinkSteps = steps
		return TestResult[T]{
			Outcome:         Failed,
			Stats:           stats,
			OriginalFailure: original,
			Counterexample:  counterexample,
			ShrinkPath:      path,
		}
	}

	return TestResult[T]{Outcome: Passed, Stats: stats}
}

// Check runs p and turns anything other than Pass into an error, wrapping
// ErrPropertyFailed and formatting the counterexample/seed/size triple
// spec §6 requires Check's message to carry.
func (p Property[T]) Check(cfg Config, s seed.Seed) error {
	result := p.Run(cfg, s)
	switch result.Outcome {
	case Passed:
		return nil
	case GaveUp:
		return fmt.Errorf("%w: %s: gave up after %d tests (%s)",
			ErrPropertyFailed, p.name, result.Stats.TestsRun, result.Reason)
	default:
		ce := result.Counterexample
		return fmt.Errorf("%w: %s: counterexample %v (seed state=%#x gamma=%#x size=%d, %d shrink steps)",
			ErrPropertyFailed, p.name, ce.Value, ce.Seed.State(), ce.Seed.Gamma(), ce.Size, result.Stats.ShrinkSteps)
	}
}

func (p Property[T]) applyClassifiers(v T, stats *TestStats) {
	for _, c := range p.classifier {
		if c.pred(v) {
			stats.addLabel(c.label)
		}
	}
}

// iterationSize computes floor(i * sizeLimit / testLimit), spec §4.B's
// linear growth from 0 towards sizeLimit across the run.
func iterationSize(i, testLimit, sizeLimit int) int {
	if testLimit <= 0 {
		return 0
	}
	return i * sizeLimit / testLimit
}

// safeGenerate calls g.Generate, recovering the internal discard signal
// FilterGen raises when it exhausts its retry budget (spec §7's Discarded
// kind) and reporting it via the discarded return instead of letting it
// escape. Any other panic (e.g. a DiscriminatedUnion discriminator
// mismatch, a genuine programming error per spec §7) is re-raised: the
// runner only contains Discarded and predicate exceptions, nothing else.
func safeGenerate[T any](g gen.Generator[T], sz gen.Size, s seed.Seed) (tree gen.Tree[T], discarded bool) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok && gen.AsDiscard(err) {
				discarded = true
				return
			}
			panic(r)
		}
	}()
	tree = g.Generate(sz, s)
	return tree, false
}

// evalPredicate calls pred, recovering a panic and substituting onPanic
// for its result instead of propagating (spec §7's "predicate exception"
// kind). The main loop passes onPanic=false (a raising predicate counts
// as a failure, driving the shrink phase); shrink descent passes
// onPanic=true (a raising predicate on a shrink candidate counts as "not
// a better counterexample", so the candidate is skipped and the current
// failing value is preserved).
func evalPredicate[T any](pred func(T) bool, v T, onPanic bool) (result bool) {
	defer func() {
		if r := recover(); r != nil {
			result = onPanic
		}
	}()
	return pred(v)
}

// shrinkDescent walks the failing tree greedily and depth-first (spec
// §4.E): at each step it scans the current node's children in order for
// the first one whose value still fails the predicate, descends into it,
// and restarts the scan from that node's own children. It stops when no
// child fails or shrinkLimit steps have been taken. size and s are the
// exact (Size, Seed) pair that produced the whole tree, so they remain
// valid reproduction keys for every node along the path, not just the
// root.
func shrinkDescent[T any](root gen.Tree[T], pred func(T) bool, shrinkLimit int, size int, s seed.Seed) (TestCase[T], []TestCase[T], int) {
	cur := root
	var path []TestCase[T]
	steps := 0
	for steps < shrinkLimit {
		child, ok := firstFailingChild(cur, pred)
		if !ok {
			break
		}
		cur = child
		steps++
		path = append(path, TestCase[T]{Value: cur.Value, Size: size, Seed: s})
	}
	return TestCase[T]{Value: cur.Value, Size: size, Seed: s}, path, steps
}

func firstFailingChild[T any](t gen.Tree[T], pred func(T) bool) (gen.Tree[T], bool) {
	for i := 0; i < t.NumChildren(); i++ {
		c := t.Child(i)
		if !evalPredicate(pred, c.Value, true) {
			return c, true
		}
	}
	return gen.Tree[T]{}, false
}
