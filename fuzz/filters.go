package fuzz

import (
	"github.com/portside/seafuzz/model/order"
	"github.com/portside/seafuzz/module"
)

// Filters holds the eligibility predicates of the engine, one per mutation
// kind. Each predicate answers whether the order at the given index is
// ineligible for that mutation: corrupting an ineligible order would either
// induce no error at all, or an error other than the one the mutation is
// meant to exercise, so ineligible orders are never selected.
//
// Filters are total and side-effect free. They only read the context and
// the status oracle, and any situation they cannot model, including an
// oracle lookup failure, defaults to ineligible rather than risking a
// false-positive assertion downstream.
type Filters struct {
	status   module.OrderStatusReader
	accounts module.AccountInspector
}

// NewFilters returns filters backed by the given status oracle and account
// inspector.
func NewFilters(status module.OrderStatusReader, accounts module.AccountInspector) *Filters {
	return &Filters{
		status:   status,
		accounts: accounts,
	}
}

// IneligibleForEOASignature is the base predicate shared by every
// signature-class mutation. An order is ineligible for signature corruption
// if any of the following holds:
//   - it is not part of the baseline-expected fulfillment set, so the call
//     would never reach its signature;
//   - it is a contract order, validated by the offerer contract instead of
//     a signature;
//   - its offerer is the caller, since self-fulfillment bypasses signature
//     checks;
//   - its offerer has associated code, since only externally-owned
//     accounts go through plain ECDSA verification;
//   - it has already been validated on-chain, which skips signature
//     verification entirely.
func (f *Filters) IneligibleForEOASignature(ectx *ExecutionContext, orderIndex int) bool {
	if orderIndex < 0 || orderIndex >= len(ectx.Orders) {
		return true
	}
	if !ectx.ExpectedAvailable[orderIndex] {
		return true
	}

	o := &ectx.Orders[orderIndex]
	if o.Type.IsContract() {
		return true
	}
	if o.Offerer == ectx.Caller {
		return true
	}
	if f.accounts.HasCode(o.Offerer) {
		return true
	}

	status, err := f.status.OrderStatus(ectx.OrderHashes[orderIndex])
	if err != nil {
		return true
	}
	return status.Validated
}

// IneligibleForInvalidSignature guards the empty-signature mutation. On top
// of the base predicate, a signature that is already neither 64 nor 65
// bytes long is already broken, so emptying it would be redundant and the
// order is ineligible.
func (f *Filters) IneligibleForInvalidSignature(ectx *ExecutionContext, orderIndex int) bool {
	if f.IneligibleForEOASignature(ectx, orderIndex) {
		return true
	}
	return !order.IsStandardSignatureLength(len(ectx.Orders[orderIndex].Signature))
}

// IneligibleForInvalidSigner guards the signature flip-bit mutation, which
// targets the bulk-signature verification path. The signature length must
// satisfy the bulk encoding formula; any other length is ineligible.
func (f *Filters) IneligibleForInvalidSigner(ectx *ExecutionContext, orderIndex int) bool {
	if f.IneligibleForEOASignature(ectx, orderIndex) {
		return true
	}
	return !order.IsBulkSignatureLength(len(ectx.Orders[orderIndex].Signature))
}

// IneligibleForModifiedOrder guards the salt-flip mutation. Changing the
// salt re-derives the order hash out from under whatever signature the
// order carries, so the base signature eligibility conditions are the only
// requirement.
func (f *Filters) IneligibleForModifiedOrder(ectx *ExecutionContext, orderIndex int) bool {
	return f.IneligibleForEOASignature(ectx, orderIndex)
}

// IneligibleForBadSignatureV guards the recovery-byte mutation. Only
// extended 65-byte signatures carry an explicit recovery parameter at a
// fixed offset; every other length is ineligible.
func (f *Filters) IneligibleForBadSignatureV(ectx *ExecutionContext, orderIndex int) bool {
	if f.IneligibleForEOASignature(ectx, orderIndex) {
		return true
	}
	return len(ectx.Orders[orderIndex].Signature) != order.ExtendedSignatureLength
}

// IneligibleForInvalidTime guards both time-window mutations. The
// batch-available operations treat a time-invalid order as merely
// unavailable rather than reverting, so no order is eligible under them.
// Beyond that the base predicate applies, which in particular exempts
// contract orders from the time-window class.
func (f *Filters) IneligibleForInvalidTime(ectx *ExecutionContext, orderIndex int) bool {
	if ectx.Operation.IsFulfillAvailable() {
		return true
	}
	return f.IneligibleForEOASignature(ectx, orderIndex)
}

// IneligibleForBadFraction guards the fill-fraction mutations. Orders are
// ineligible when the operation never reads the fraction (every
// non-advanced entry point), when the order is not expected to be
// available, or when it is a contract order.
//
// Note that an order excluded from the expected-available set for an
// unrelated reason (already fully filled, cancelled, generation failure)
// could still legitimately produce a bad-fraction error; the predicate
// deliberately over-excludes such orders instead of trying to prove the
// error reachable, trading missed candidates for the guarantee of never
// asserting the wrong error.
func (f *Filters) IneligibleForBadFraction(ectx *ExecutionContext, orderIndex int) bool {
	if orderIndex < 0 || orderIndex >= len(ectx.Orders) {
		return true
	}
	if !ectx.Operation.ValidatesFraction() {
		return true
	}
	if !ectx.ExpectedAvailable[orderIndex] {
		return true
	}
	return ectx.Orders[orderIndex].Type.IsContract()
}

// IneligibleForBadFractionPartial is the stricter fraction predicate used
// by the no-fill mutation. The advanced batch-available operation accounts
// fractions differently and does not surface the zero-numerator error, so
// it is excluded on top of the plain fraction conditions.
func (f *Filters) IneligibleForBadFractionPartial(ectx *ExecutionContext, orderIndex int) bool {
	if ectx.Operation == order.FulfillAvailableAdvancedOrders {
		return true
	}
	return f.IneligibleForBadFraction(ectx, orderIndex)
}

// IneligibleForOrderCancelled guards the forced-cancellation mutation.
// Under the batch-available operations a cancelled order is demoted to
// unavailable instead of causing a revert, and contract orders do not go
// through the cancellation check at all.
func (f *Filters) IneligibleForOrderCancelled(ectx *ExecutionContext, orderIndex int) bool {
	if orderIndex < 0 || orderIndex >= len(ectx.Orders) {
		return true
	}
	if ectx.Operation.IsFulfillAvailable() {
		return true
	}
	return ectx.Orders[orderIndex].Type.IsContract()
}
