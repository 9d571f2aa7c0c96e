package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portside/seafuzz/model/order"
)

func TestOrderHashDeterministic(t *testing.T) {
	o := order.Order{
		Numerator:   1,
		Denominator: 1,
		StartTime:   1000,
		EndTime:     2000,
		Salt:        42,
	}
	assert.Equal(t, o.Hash(), o.Hash())
}

func TestOrderHashCommitsToSalt(t *testing.T) {
	o := order.Order{Salt: 42}
	original := o.Hash()

	o.Salt ^= 0x01
	assert.NotEqual(t, original, o.Hash(), "salt flip must re-derive the hash")

	o.Salt ^= 0x01
	assert.Equal(t, original, o.Hash())
}

func TestOrderHashIgnoresSignature(t *testing.T) {
	o := order.Order{Salt: 42}
	original := o.Hash()

	o.Signature = []byte{0xde, 0xad, 0xbe, 0xef}
	assert.Equal(t, original, o.Hash(), "signature is not part of the signed payload")
}

func TestTypeIsContract(t *testing.T) {
	for _, tt := range []order.Type{
		order.FullOpen, order.PartialOpen, order.FullRestricted, order.PartialRestricted,
	} {
		assert.Falsef(t, tt.IsContract(), "type %s", tt)
	}
	assert.True(t, order.Contract.IsContract())
}
