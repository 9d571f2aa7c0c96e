package module

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/portside/seafuzz/model/order"
)

// OrderStatusReader provides read-only access to the persisted validation
// and cancellation state of orders in the protocol under test. Eligibility
// filters consult it and treat any lookup error as grounds for exclusion.
type OrderStatusReader interface {
	// OrderStatus returns the persisted status for the order with the
	// given hash. Orders the protocol has never seen return a zero Status.
	OrderStatus(hash common.Hash) (order.Status, error)
}

// StatusInscriber is a test-only backdoor into the protocol's status store.
// It forces the persisted cancellation flag for an order without going
// through the normal cancellation transaction, so a trial can exercise the
// cancelled-order rejection path in isolation.
type StatusInscriber interface {
	InscribeCancelled(hash common.Hash, cancelled bool) error
}
