package order

// Operation identifies one of the high-level fulfillment entry points of
// the protocol under test. The set is closed: fuzzing trials draw from
// exactly these operations, and eligibility filters match on the variant
// rather than inspecting protocol internals.
type Operation int8

const (
	// FulfillOrder fulfills a single order in full.
	FulfillOrder Operation = iota
	// FulfillAdvancedOrder fulfills a single order, optionally partially
	// and with criteria resolution.
	FulfillAdvancedOrder
	// FulfillBasicOrder fulfills a single order matching a restricted
	// "basic" shape via a cheaper code path.
	FulfillBasicOrder
	// FulfillBasicOrderEfficient is the calldata-optimized variant of
	// FulfillBasicOrder.
	FulfillBasicOrderEfficient
	// FulfillAvailableOrders attempts a batch of orders, skipping any
	// that turn out to be unavailable instead of reverting.
	FulfillAvailableOrders
	// FulfillAvailableAdvancedOrders is the advanced-order variant of
	// FulfillAvailableOrders.
	FulfillAvailableAdvancedOrders
	// MatchOrders matches a set of orders against each other.
	MatchOrders
	// MatchAdvancedOrders matches advanced orders against each other.
	MatchAdvancedOrders
)

// Operations lists every fulfillment operation, in declaration order.
var Operations = []Operation{
	FulfillOrder,
	FulfillAdvancedOrder,
	FulfillBasicOrder,
	FulfillBasicOrderEfficient,
	FulfillAvailableOrders,
	FulfillAvailableAdvancedOrders,
	MatchOrders,
	MatchAdvancedOrders,
}

// String returns the protocol-level name of the operation.
func (op Operation) String() string {
	switch op {
	case FulfillOrder:
		return "fulfillOrder"
	case FulfillAdvancedOrder:
		return "fulfillAdvancedOrder"
	case FulfillBasicOrder:
		return "fulfillBasicOrder"
	case FulfillBasicOrderEfficient:
		return "fulfillBasicOrder_efficient"
	case FulfillAvailableOrders:
		return "fulfillAvailableOrders"
	case FulfillAvailableAdvancedOrders:
		return "fulfillAvailableAdvancedOrders"
	case MatchOrders:
		return "matchOrders"
	case MatchAdvancedOrders:
		return "matchAdvancedOrders"
	default:
		return "unknownOperation"
	}
}

// IsFulfillAvailable returns true for the batch-available operations. These
// demote individually invalid orders to "unavailable" instead of reverting,
// so mutations that rely on a revert must not target them.
func (op Operation) IsFulfillAvailable() bool {
	return op == FulfillAvailableOrders || op == FulfillAvailableAdvancedOrders
}

// ValidatesFraction returns true for the operations that validate the fill
// fraction of each order. The non-advanced entry points fix the fraction to
// a full fill and never read the numerator or denominator, so corrupting
// the fraction under them induces no error.
func (op Operation) ValidatesFraction() bool {
	switch op {
	case FulfillAdvancedOrder, FulfillAvailableAdvancedOrders, MatchAdvancedOrders:
		return true
	default:
		return false
	}
}
