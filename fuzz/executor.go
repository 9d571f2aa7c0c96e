package fuzz

// Executor performs the terminal call of a trial: it executes the selected
// fulfillment operation against the protocol under test using the (possibly
// mutated) context, and asserts that the outcome matches what the active
// mutation predicts. The assertion logic lives entirely on the executor
// side; a prediction mismatch is a test-suite failure, never swallowed by
// the engine.
type Executor interface {
	Execute(ectx *ExecutionContext) error
}
