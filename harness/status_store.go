// Package harness provides in-memory implementations of the engine's
// collaborator interfaces: a status store with the inscription backdoor, a
// static account inspector, a recording executor, and a wall clock. Tests
// and the soak CLI run trials against them; a real deployment substitutes
// implementations backed by the protocol under test.
package harness

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"github.com/portside/seafuzz/model/order"
)

// StatusStore is an in-memory order-status oracle. It implements both the
// read side used by eligibility filters and the test-only inscription
// backdoor used by the cancellation mutation.
type StatusStore struct {
	mu       sync.RWMutex
	statuses map[common.Hash]order.Status
}

func NewStatusStore() *StatusStore {
	return &StatusStore{
		statuses: make(map[common.Hash]order.Status),
	}
}

// OrderStatus returns the stored status for the hash. Unknown orders
// return a zero status, matching the protocol's default storage slot.
func (ss *StatusStore) OrderStatus(hash common.Hash) (order.Status, error) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.statuses[hash], nil
}

// InscribeCancelled forces the persisted cancellation flag for the hash
// without a cancellation transaction.
func (ss *StatusStore) InscribeCancelled(hash common.Hash, cancelled bool) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	status := ss.statuses[hash]
	status.Cancelled = cancelled
	ss.statuses[hash] = status
	return nil
}

// MarkValidated records an explicit on-chain validation of the order.
func (ss *StatusStore) MarkValidated(hash common.Hash) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	status := ss.statuses[hash]
	status.Validated = true
	ss.statuses[hash] = status
}

// RecordFill records the filled fraction of the order.
func (ss *StatusStore) RecordFill(hash common.Hash, numerator, denominator uint64) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	status := ss.statuses[hash]
	status.NumeratorFilled = numerator
	status.DenominatorFilled = denominator
	ss.statuses[hash] = status
}
