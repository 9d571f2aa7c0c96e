package unittest

import (
	"crypto/ecdsa"
	"fmt"
	"math/rand"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/portside/seafuzz/fuzz"
	"github.com/portside/seafuzz/model/order"
)

// fixture window half-width around "now", in seconds
const fixtureWindowSlack = 3600

// AddressFixture returns a random account address.
func AddressFixture() common.Address {
	var addr common.Address
	read(addr[:])
	return addr
}

// KeyFixture returns a fresh secp256k1 private key.
func KeyFixture() *ecdsa.PrivateKey {
	key, err := crypto.GenerateKey()
	if err != nil {
		panic(fmt.Sprintf("could not generate key fixture: %s", err))
	}
	return key
}

// SignatureFixture returns n random signature bytes. Callers pick n to land
// on (or off) the encoding they want to exercise.
func SignatureFixture(n int) []byte {
	sig := make([]byte, n)
	read(sig)
	return sig
}

// BulkSignatureFixture returns random signature bytes whose length
// satisfies the bulk-signature encoding formula.
func BulkSignatureFixture() []byte {
	// lengths of the form 35 + 32*k (+1), k in [1, 25], all of which lie
	// strictly between 64 and 837
	k := 1 + rand.Intn(25)
	n := 35 + 32*k + rand.Intn(2)
	return SignatureFixture(n)
}

// OrderFixture returns an order that is currently valid, fully fillable,
// and carries an extended-length (65 byte) random signature. Options mutate
// the fixture before it is returned.
func OrderFixture(now uint64, opts ...func(*order.Order)) order.Order {
	o := order.Order{
		Offerer:     AddressFixture(),
		Type:        order.FullOpen,
		Signature:   SignatureFixture(order.ExtendedSignatureLength),
		Numerator:   1,
		Denominator: 1,
		StartTime:   now - fixtureWindowSlack,
		EndTime:     now + fixtureWindowSlack,
		Salt:        rand.Uint64(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithOrderType sets the order type of a fixture.
func WithOrderType(t order.Type) func(*order.Order) {
	return func(o *order.Order) {
		o.Type = t
	}
}

// WithOfferer sets the offerer of a fixture.
func WithOfferer(addr common.Address) func(*order.Order) {
	return func(o *order.Order) {
		o.Offerer = addr
	}
}

// WithSignature sets the signature bytes of a fixture.
func WithSignature(sig []byte) func(*order.Order) {
	return func(o *order.Order) {
		o.Signature = sig
	}
}

// WithWindow sets the validity window of a fixture.
func WithWindow(start, end uint64) func(*order.Order) {
	return func(o *order.Order) {
		o.StartTime = start
		o.EndTime = end
	}
}

// WithFraction sets the fill fraction of a fixture.
func WithFraction(numerator, denominator uint64) func(*order.Order) {
	return func(o *order.Order) {
		o.Numerator = numerator
		o.Denominator = denominator
	}
}

// SignedOrderFixture returns an order genuinely signed by the given key:
// the offerer is the key's address and the signature is a real extended
// ECDSA signature over the order hash.
func SignedOrderFixture(now uint64, key *ecdsa.PrivateKey, opts ...func(*order.Order)) order.Order {
	o := OrderFixture(now, opts...)
	o.Offerer = crypto.PubkeyToAddress(key.PublicKey)
	sig, err := crypto.Sign(o.Hash().Bytes(), key)
	if err != nil {
		panic(fmt.Sprintf("could not sign order fixture: %s", err))
	}
	o.Signature = sig
	return o
}

// ExecutionContextFixture returns a trial context over n order fixtures,
// all expected available, with a random caller distinct from every offerer.
func ExecutionContextFixture(n int, now uint64, opts ...func(*fuzz.ExecutionContext)) *fuzz.ExecutionContext {
	ectx := &fuzz.ExecutionContext{
		Orders:            make([]order.Order, 0, n),
		OrderHashes:       make([]common.Hash, 0, n),
		ExpectedAvailable: make([]bool, n),
		Caller:            AddressFixture(),
		Operation:         order.FulfillAdvancedOrder,
	}
	for i := 0; i < n; i++ {
		o := OrderFixture(now)
		ectx.Orders = append(ectx.Orders, o)
		ectx.OrderHashes = append(ectx.OrderHashes, o.Hash())
		ectx.ExpectedAvailable[i] = true
	}
	for _, opt := range opts {
		opt(ectx)
	}
	return ectx
}

// WithOperation sets the operation under test of a context fixture.
func WithOperation(op order.Operation) func(*fuzz.ExecutionContext) {
	return func(ectx *fuzz.ExecutionContext) {
		ectx.Operation = op
	}
}

// WithCaller sets the caller of a context fixture.
func WithCaller(addr common.Address) func(*fuzz.ExecutionContext) {
	return func(ectx *fuzz.ExecutionContext) {
		ectx.Caller = addr
	}
}

// RehashOrders recomputes the order hashes of a context after its orders
// were modified in place.
func RehashOrders(ectx *fuzz.ExecutionContext) {
	for i := range ectx.Orders {
		ectx.OrderHashes[i] = ectx.Orders[i].Hash()
	}
}

func read(p []byte) {
	// math/rand is deliberate: fixtures only need variety, not entropy
	if _, err := rand.Read(p); err != nil {
		panic(fmt.Sprintf("could not read fixture randomness: %s", err))
	}
}
