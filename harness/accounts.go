package harness

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// AccountSet is an account inspector over a fixed set of contract
// addresses. Every address outside the set is treated as externally owned.
type AccountSet struct {
	mu        sync.RWMutex
	contracts map[common.Address]struct{}
}

func NewAccountSet(contracts ...common.Address) *AccountSet {
	as := &AccountSet{
		contracts: make(map[common.Address]struct{}, len(contracts)),
	}
	for _, addr := range contracts {
		as.contracts[addr] = struct{}{}
	}
	return as
}

// AddContract marks the address as having associated code.
func (as *AccountSet) AddContract(addr common.Address) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.contracts[addr] = struct{}{}
}

// HasCode reports whether the address belongs to the contract set.
func (as *AccountSet) HasCode(addr common.Address) bool {
	as.mu.RLock()
	defer as.mu.RUnlock()
	_, ok := as.contracts[addr]
	return ok
}
