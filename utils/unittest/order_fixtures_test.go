package unittest_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portside/seafuzz/model/order"
	"github.com/portside/seafuzz/utils/unittest"
)

const now = uint64(1_700_000_000)

func TestOrderFixtureDefaults(t *testing.T) {
	o := unittest.OrderFixture(now)

	assert.Equal(t, order.FullOpen, o.Type)
	assert.Len(t, o.Signature, order.ExtendedSignatureLength)
	assert.Equal(t, uint64(1), o.Numerator)
	assert.Equal(t, uint64(1), o.Denominator)
	assert.True(t, o.StartTime <= now && now < o.EndTime, "fixture must be currently valid")
}

func TestBulkSignatureFixtureSatisfiesFormula(t *testing.T) {
	for i := 0; i < 100; i++ {
		sig := unittest.BulkSignatureFixture()
		assert.Truef(t, order.IsBulkSignatureLength(len(sig)), "length %d", len(sig))
	}
}

func TestSignedOrderFixtureRecoversToOfferer(t *testing.T) {
	key := unittest.KeyFixture()
	o := unittest.SignedOrderFixture(now, key)

	require.Len(t, o.Signature, order.ExtendedSignatureLength)
	pub, err := crypto.SigToPub(o.Hash().Bytes(), o.Signature)
	require.NoError(t, err)
	assert.Equal(t, o.Offerer, crypto.PubkeyToAddress(*pub))
}

func TestExecutionContextFixtureAligned(t *testing.T) {
	ectx := unittest.ExecutionContextFixture(5, now)

	require.NoError(t, ectx.Validate())
	for i := range ectx.Orders {
		assert.Equal(t, ectx.Orders[i].Hash(), ectx.OrderHashes[i])
		assert.True(t, ectx.ExpectedAvailable[i])
		assert.NotEqual(t, ectx.Caller, ectx.Orders[i].Offerer)
	}
}
