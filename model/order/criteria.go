package order

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Side distinguishes the two item lists of an order when addressing a
// criteria-based item.
type Side int8

const (
	// OfferSide addresses an item the offerer is giving up.
	OfferSide Side = iota
	// ConsiderationSide addresses an item the offerer expects in return.
	ConsiderationSide
)

// String returns the canonical name of the side.
func (s Side) String() string {
	switch s {
	case OfferSide:
		return "OFFER"
	case ConsiderationSide:
		return "CONSIDERATION"
	default:
		return "UNKNOWN"
	}
}

// CriteriaResolver supplies the concrete token identifier, and a Merkle
// inclusion proof against the order's criteria root, for one criteria-based
// item at fulfillment time.
type CriteriaResolver struct {
	// OrderIndex addresses the order within the batch being fulfilled.
	OrderIndex uint

	// Side and Index address the criteria-based item within that order.
	Side  Side
	Index uint

	// Identifier is the actual token identifier being supplied.
	Identifier *big.Int

	// Proof is the Merkle path from the identifier leaf to the criteria
	// root committed in the order. An empty proof is valid only for a
	// wildcard criteria root.
	Proof []common.Hash
}
