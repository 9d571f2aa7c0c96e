package order

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Order is one leg of a multi-order fulfillment operation. It carries the
// data the protocol validates before transferring anything: who created the
// order, how it is authorized, when it is live, and what fraction of it the
// caller wants filled.
type Order struct {
	// Offerer is the account that created and authorized the order.
	Offerer common.Address

	// Type determines which validation code path the order takes.
	// Contract orders are generated programmatically by a contract account
	// and bypass signature, time, and fraction checks entirely.
	Type Type

	// Signature authorizes the order on behalf of the offerer. Valid
	// encodings are 65 bytes (extended, explicit recovery byte), 64 bytes
	// (EIP-2098 compact), or a bulk-signature encoding (see signature.go).
	Signature []byte

	// Numerator and Denominator express the fill fraction requested for
	// this order. A zero numerator means no fill is attempted; a numerator
	// exceeding the denominator is an illegal overfill request.
	Numerator   uint64
	Denominator uint64

	// StartTime and EndTime bound the validity window, compared against
	// the current time in unix seconds. The order is live while
	// StartTime <= now < EndTime.
	StartTime uint64
	EndTime   uint64

	// Salt is an arbitrary per-order nonce. It is part of the signed
	// payload, so flipping it invalidates any signature computed over the
	// original order without touching the signature bytes themselves.
	Salt uint64
}

// Hash returns the derived identifier of the order, used to look up its
// persisted validation and cancellation status. The hash commits to every
// field of the signed payload, including the salt, and excludes the
// signature itself.
func (o *Order) Hash() common.Hash {
	buf := make([]byte, 0, common.AddressLength+1+6*8)
	buf = append(buf, o.Offerer.Bytes()...)
	buf = append(buf, byte(o.Type))
	buf = binary.BigEndian.AppendUint64(buf, o.Numerator)
	buf = binary.BigEndian.AppendUint64(buf, o.Denominator)
	buf = binary.BigEndian.AppendUint64(buf, o.StartTime)
	buf = binary.BigEndian.AppendUint64(buf, o.EndTime)
	buf = binary.BigEndian.AppendUint64(buf, o.Salt)
	return crypto.Keccak256Hash(buf)
}
