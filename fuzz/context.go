package fuzz

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/portside/seafuzz/model/order"
)

// ExecutionContext bundles the per-trial state handed through the engine:
// the order batch, the hashes and baseline availability flags aligned with
// it, the caller identity, and the operation under test. The driver owns
// the context for the duration of the trial; filters only read it, exactly
// one applier mutates it, and the executor consumes it.
type ExecutionContext struct {
	// Orders is the batch under test. Order matters: entries are
	// positional against OrderHashes and ExpectedAvailable.
	Orders []order.Order

	// OrderHashes holds the derived hash of each order, aligned 1:1 with
	// Orders. Computed upstream, before any mutation.
	OrderHashes []common.Hash

	// ExpectedAvailable flags, per order, whether a non-mutated
	// fulfillment would include it. Precomputed by the availability
	// oracle; filters only read it.
	ExpectedAvailable []bool

	// Caller is the identity performing the fulfillment call.
	Caller common.Address

	// Operation is the fulfillment entry point selected for this trial.
	Operation order.Operation
}

// Validate checks the parallel-slice alignment invariant of the context.
func (ectx *ExecutionContext) Validate() error {
	if len(ectx.OrderHashes) != len(ectx.Orders) {
		return fmt.Errorf("order hashes misaligned: %d hashes for %d orders",
			len(ectx.OrderHashes), len(ectx.Orders))
	}
	if len(ectx.ExpectedAvailable) != len(ectx.Orders) {
		return fmt.Errorf("availability flags misaligned: %d flags for %d orders",
			len(ectx.ExpectedAvailable), len(ectx.Orders))
	}
	return nil
}

// MutationState records the single order index a trial has selected for
// mutation. It is written exactly once, before the applier runs, and read
// by the applier to locate its target.
type MutationState struct {
	selectedOrderIndex int
	selected           bool
}

// Select records the chosen order index. Selecting twice within the same
// trial is a selection-driver bug and returns an error.
func (s *MutationState) Select(orderIndex int) error {
	if s.selected {
		return fmt.Errorf("order index already selected (%d), refusing to select %d",
			s.selectedOrderIndex, orderIndex)
	}
	if orderIndex < 0 {
		return fmt.Errorf("invalid order index %d", orderIndex)
	}
	s.selectedOrderIndex = orderIndex
	s.selected = true
	return nil
}

// SelectedOrderIndex returns the recorded index and whether a selection has
// been made.
func (s *MutationState) SelectedOrderIndex() (int, bool) {
	return s.selectedOrderIndex, s.selected
}

// mustSelected returns the selected index, panicking if no selection was
// made or the index does not address an order in the context. Either
// condition indicates a bug in the selection driver, not a recoverable
// runtime fault.
func (s *MutationState) mustSelected(ectx *ExecutionContext) int {
	if !s.selected {
		panic("mutation applied without a selected order index")
	}
	if s.selectedOrderIndex >= len(ectx.Orders) {
		panic(fmt.Sprintf("selected order index %d out of range for %d orders",
			s.selectedOrderIndex, len(ectx.Orders)))
	}
	return s.selectedOrderIndex
}
