package fuzz

import (
	"fmt"

	"github.com/portside/seafuzz/model/order"
	"github.com/portside/seafuzz/module"
)

// Mutations holds the appliers of the engine, one per mutation kind. Each
// applier corrupts exactly one field of the order selected in the mutation
// state, then hands the full mutated context to the executor. Appliers
// assume their paired filter has already passed and perform no redundant
// validation; an unset or out-of-range selection is a bug in the selection
// driver and panics.
type Mutations struct {
	clock     module.Clock
	inscriber module.StatusInscriber
	executor  Executor
}

// NewMutations returns appliers wired to the given clock, status-store
// backdoor, and executor.
func NewMutations(clock module.Clock, inscriber module.StatusInscriber, executor Executor) *Mutations {
	return &Mutations{
		clock:     clock,
		inscriber: inscriber,
		executor:  executor,
	}
}

// InvalidSignature empties the selected order's signature, inducing the
// absent-signature verification failure.
func (m *Mutations) InvalidSignature(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	ectx.Orders[i].Signature = []byte{}
	return m.executor.Execute(ectx)
}

// InvalidSignerBadSignature flips the lowest bit of the first signature
// byte, so the signature recovers to the wrong signer.
func (m *Mutations) InvalidSignerBadSignature(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	ectx.Orders[i].Signature[0] ^= 0x01
	return m.executor.Execute(ectx)
}

// InvalidSignerModifiedOrder flips the lowest bit of the selected order's
// salt. The order hash changes, so the original signature no longer
// matches the order it is presented with.
func (m *Mutations) InvalidSignerModifiedOrder(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	ectx.Orders[i].Salt ^= 0x01
	return m.executor.Execute(ectx)
}

// BadSignatureV overwrites the recovery byte of the selected order's
// extended signature with 0xFF, a malformed recovery parameter.
func (m *Mutations) BadSignatureV(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	ectx.Orders[i].Signature[order.RecoveryByteOffset] = 0xFF
	return m.executor.Execute(ectx)
}

// InvalidTimeNotStarted moves the selected order's validity window just
// past the current time, so the order is not yet valid.
func (m *Mutations) InvalidTimeNotStarted(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	now := m.clock.Now()
	ectx.Orders[i].StartTime = now + 1
	ectx.Orders[i].EndTime = now + 2
	return m.executor.Execute(ectx)
}

// InvalidTimeExpired moves the selected order's validity window fully
// behind the current time, so the order has already elapsed.
func (m *Mutations) InvalidTimeExpired(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	now := m.clock.Now()
	ectx.Orders[i].StartTime = now - 1
	ectx.Orders[i].EndTime = now
	return m.executor.Execute(ectx)
}

// BadFractionNoFill zeroes the selected order's numerator, requesting no
// fill at all.
func (m *Mutations) BadFractionNoFill(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	ectx.Orders[i].Numerator = 0
	return m.executor.Execute(ectx)
}

// BadFractionOverfill overwrites the selected order's fraction with 2/1,
// a fill request exceeding the whole order. The original values are
// replaced outright, not scaled.
func (m *Mutations) BadFractionOverfill(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	ectx.Orders[i].Numerator = 2
	ectx.Orders[i].Denominator = 1
	return m.executor.Execute(ectx)
}

// OrderCancelled forces the persisted cancellation flag for the selected
// order's hash through the status-store backdoor, bypassing the normal
// cancellation transaction, then executes against the now-cancelled order.
func (m *Mutations) OrderCancelled(ectx *ExecutionContext, state *MutationState) error {
	i := state.mustSelected(ectx)
	if err := m.inscriber.InscribeCancelled(ectx.OrderHashes[i], true); err != nil {
		return fmt.Errorf("could not inscribe cancellation for order %d: %w", i, err)
	}
	return m.executor.Execute(ectx)
}
