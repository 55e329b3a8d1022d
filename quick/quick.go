// Package quick provides small test-helper utilities shared across this
// module's own test suites: value comparison and formatting a property
// run's counterexample for a test failure message.
package quick

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lucaskalb/rapidx/prop"
)

// Equal compares two values of the same type and fails the test if they
// are not equal, using go-cmp for deep comparison and a readable diff.
func Equal[T any](t *testing.T, got, want T) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// CheckResult fails t with a diagnostic message if result is not a Pass.
// The message reports both the original (pre-shrink) failing value and
// the final counterexample side by side via go-cmp, plus the replay
// triple spec §6 requires (seed state, seed gamma, size).
func CheckResult[T any](t *testing.T, result prop.TestResult[T]) {
	t.Helper()
	switch result.Outcome {
	case prop.Passed:
		return
	case prop.GaveUp:
		t.Fatalf("property gave up: %s (tests run: %d)", result.Reason, result.Stats.TestsRun)
	default:
		diff := cmp.Diff(result.OriginalFailure.Value, result.Counterexample.Value)
		t.Fatalf(
			"property failed after %d shrink steps\noriginal vs. counterexample (-original +counterexample):\n%s\nreplay: seed state=%#x gamma=%#x size=%d",
			result.Stats.ShrinkSteps, diff,
			result.Counterexample.Seed.State(), result.Counterexample.Seed.Gamma(), result.Counterexample.Size,
		)
	}
}
