package order

// Type enumerates the order types of the fulfillment protocol. The type
// determines how an order is authorized and how partial fills are treated.
type Type int8

const (
	// FullOpen orders must be filled completely and may be fulfilled by
	// anyone.
	FullOpen Type = iota
	// PartialOpen orders may be filled partially and may be fulfilled by
	// anyone.
	PartialOpen
	// FullRestricted orders must be filled completely and are subject to
	// zone review.
	FullRestricted
	// PartialRestricted orders may be filled partially and are subject to
	// zone review.
	PartialRestricted
	// Contract orders are generated on demand by a contract offerer. Their
	// validity is decided by the offerer contract itself, so signature,
	// time-window, and fill-fraction validation do not apply to them.
	Contract
)

// String returns the canonical name of the order type.
func (t Type) String() string {
	switch t {
	case FullOpen:
		return "FULL_OPEN"
	case PartialOpen:
		return "PARTIAL_OPEN"
	case FullRestricted:
		return "FULL_RESTRICTED"
	case PartialRestricted:
		return "PARTIAL_RESTRICTED"
	case Contract:
		return "CONTRACT"
	default:
		return "UNKNOWN"
	}
}

// IsContract returns true for contract-offerer orders, which are exempt
// from the EOA validation paths.
func (t Type) IsContract() bool {
	return t == Contract
}
