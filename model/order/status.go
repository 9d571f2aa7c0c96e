package order

// Status is the persisted on-chain validation state of an order, keyed by
// its hash.
type Status struct {
	// Validated is set once the order has been explicitly validated
	// on-chain; a validated order skips signature verification.
	Validated bool

	// Cancelled is set once the order has been cancelled; a cancelled
	// order is rejected (or skipped, depending on the operation).
	Cancelled bool

	// NumeratorFilled over DenominatorFilled is the fraction of the order
	// already filled by previous fulfillments.
	NumeratorFilled   uint64
	DenominatorFilled uint64
}

// FullyFilled reports whether the order has no remaining fill capacity.
func (s Status) FullyFilled() bool {
	return s.DenominatorFilled != 0 && s.NumeratorFilled >= s.DenominatorFilled
}
