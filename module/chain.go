package module

import "github.com/ethereum/go-ethereum/common"

// AccountInspector answers whether an account has associated code, which is
// what separates contract accounts from externally-owned accounts for
// signature verification purposes.
type AccountInspector interface {
	HasCode(addr common.Address) bool
}
