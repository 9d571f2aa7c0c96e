package module

import "github.com/portside/seafuzz/model/order"

// MutationMetrics collects the outcomes of fuzzing trials.
type MutationMetrics interface {
	// TrialStarted is called once per trial with the operation under test.
	TrialStarted(op order.Operation)

	// MutationApplied is called when a trial selects and applies the named
	// mutation kind.
	MutationApplied(kind string)

	// BaselineFallthrough is called when a trial finds no eligible
	// candidate for any mutation kind and executes the batch un-mutated.
	BaselineFallthrough()
}
