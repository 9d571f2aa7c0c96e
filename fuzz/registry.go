package fuzz

import "fmt"

// Kind enumerates the mutation kinds of the engine. The set is closed:
// every kind carries exactly one eligibility filter and one applier,
// registered together in the Registry so that adding a kind without its
// pair is caught at construction time.
type Kind int8

const (
	KindInvalidSignature Kind = iota
	KindInvalidSignerBadSignature
	KindInvalidSignerModifiedOrder
	KindBadSignatureV
	KindInvalidTimeNotStarted
	KindInvalidTimeExpired
	KindBadFractionNoFill
	KindBadFractionOverfill
	KindOrderCancelled

	numKinds
)

// String returns the canonical name of the mutation kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidSignature:
		return "invalid_signature"
	case KindInvalidSignerBadSignature:
		return "invalid_signer_bad_signature"
	case KindInvalidSignerModifiedOrder:
		return "invalid_signer_modified_order"
	case KindBadSignatureV:
		return "bad_signature_v"
	case KindInvalidTimeNotStarted:
		return "invalid_time_not_started"
	case KindInvalidTimeExpired:
		return "invalid_time_expired"
	case KindBadFractionNoFill:
		return "bad_fraction_no_fill"
	case KindBadFractionOverfill:
		return "bad_fraction_overfill"
	case KindOrderCancelled:
		return "order_cancelled"
	default:
		return "unknown_kind"
	}
}

// FilterFunc reports whether the order at the given index is ineligible
// for a mutation. Filters are pure and total: they only read the context.
type FilterFunc func(ectx *ExecutionContext, orderIndex int) bool

// ApplierFunc corrupts the order selected in the mutation state and hands
// the mutated context to the executor.
type ApplierFunc func(ectx *ExecutionContext, state *MutationState) error

// Mutation pairs a kind with its eligibility filter and applier.
type Mutation struct {
	Kind   Kind
	Filter FilterFunc
	Apply  ApplierFunc
}

// Registry holds the complete filter/applier pairing for every mutation
// kind.
type Registry struct {
	mutations [numKinds]Mutation
}

// NewRegistry pairs every mutation kind with its filter and applier. The
// pairing is positional over the closed Kind enum, so a kind added without
// an entry here fails the completeness check.
func NewRegistry(filters *Filters, appliers *Mutations) (*Registry, error) {
	r := &Registry{}
	for _, m := range []Mutation{
		{KindInvalidSignature, filters.IneligibleForInvalidSignature, appliers.InvalidSignature},
		{KindInvalidSignerBadSignature, filters.IneligibleForInvalidSigner, appliers.InvalidSignerBadSignature},
		{KindInvalidSignerModifiedOrder, filters.IneligibleForModifiedOrder, appliers.InvalidSignerModifiedOrder},
		{KindBadSignatureV, filters.IneligibleForBadSignatureV, appliers.BadSignatureV},
		{KindInvalidTimeNotStarted, filters.IneligibleForInvalidTime, appliers.InvalidTimeNotStarted},
		{KindInvalidTimeExpired, filters.IneligibleForInvalidTime, appliers.InvalidTimeExpired},
		{KindBadFractionNoFill, filters.IneligibleForBadFractionPartial, appliers.BadFractionNoFill},
		{KindBadFractionOverfill, filters.IneligibleForBadFraction, appliers.BadFractionOverfill},
		{KindOrderCancelled, filters.IneligibleForOrderCancelled, appliers.OrderCancelled},
	} {
		r.mutations[m.Kind] = m
	}

	for k := Kind(0); k < numKinds; k++ {
		m := r.mutations[k]
		if m.Filter == nil || m.Apply == nil {
			return nil, fmt.Errorf("mutation kind %s has no registered filter/applier pair", k)
		}
	}
	return r, nil
}

// Kinds returns every registered mutation kind, in enum order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, numKinds)
	for k := Kind(0); k < numKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Lookup returns the filter/applier pair for the given kind.
func (r *Registry) Lookup(kind Kind) (Mutation, bool) {
	if kind < 0 || kind >= numKinds {
		return Mutation{}, false
	}
	return r.mutations[kind], true
}

// Candidates evaluates the kind's filter against every order index in the
// context and returns the indices that are eligible for the mutation.
func (r *Registry) Candidates(kind Kind, ectx *ExecutionContext) []int {
	m, ok := r.Lookup(kind)
	if !ok {
		return nil
	}
	var eligible []int
	for i := range ectx.Orders {
		if !m.Filter(ectx, i) {
			eligible = append(eligible, i)
		}
	}
	return eligible
}
