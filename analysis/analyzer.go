// Package analysis declares the boundary of the order-analysis helper: a
// read-only query service that validates order batches, recommends a
// fulfillment operation, computes the resulting executions, and generates
// criteria resolvers with Merkle proofs.
//
// The helper is a pure function of order data with no mutation or filtering
// logic, so the fuzzing engine neither calls it nor is called by it; the
// two only share the model/order data types. This package carries the
// contract so that implementations and the engine agree on one surface.
package analysis

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/portside/seafuzz/model/order"
)

// Request is one analysis query over an order batch. Criteria items may be
// constrained either by explicit resolvers the caller already holds, or by
// criteria constraints from which the helper generates resolvers itself.
type Request struct {
	Orders []order.Order

	// Caller is the prospective fulfiller; recommendations account for
	// self-fulfillment shortcuts.
	Caller common.Address

	// Constraints optionally restrict criteria-based items to eligible
	// token identifier sets. Mutually exclusive with Resolvers per item.
	Constraints []CriteriaConstraint

	// Resolvers optionally supply ready-made criteria resolutions.
	Resolvers []order.CriteriaResolver
}

// CriteriaConstraint restricts one criteria-based item to a set of token
// identifiers, of which one is to be supplied at fulfillment.
type CriteriaConstraint struct {
	OrderIndex uint
	Side       order.Side
	Index      uint

	// TokenIDs are the eligible identifiers; their Merkle root must equal
	// the criteria root committed in the order item.
	TokenIDs []*big.Int

	// Identifier is the concrete token to resolve to.
	Identifier *big.Int
}

// Result is the outcome of one analysis query.
type Result struct {
	// Issues holds validation errors and warnings, per order.
	Issues []Issue

	// Suggested is the recommended fulfillment operation for the batch.
	Suggested order.Operation

	// Executions describes the item transfers the suggested operation
	// would perform.
	Executions []Execution

	// Resolvers are the criteria resolvers generated from the request's
	// constraints, ready to pass along with the fulfillment call.
	Resolvers []order.CriteriaResolver
}

// Execution is one item transfer of a computed fulfillment.
type Execution struct {
	Offerer   common.Address
	Recipient common.Address
	Token     common.Address
	// Identifier is nil for fungible transfers.
	Identifier *big.Int
	Amount     *big.Int
}

// Analyzer is the order-analysis helper. Implementations must be read-only:
// an analysis never changes order or chain state.
type Analyzer interface {
	Analyze(ctx context.Context, req *Request) (*Result, error)
}

// MerkleProver computes criteria commitments standalone, without a full
// analysis request.
type MerkleProver interface {
	// Root returns the Merkle root committing to the token identifier set.
	Root(tokenIDs []*big.Int) (common.Hash, error)

	// Proof returns the inclusion path for id within the token identifier
	// set.
	Proof(tokenIDs []*big.Int, id *big.Int) ([]common.Hash, error)
}
