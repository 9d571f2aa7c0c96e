package harness_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portside/seafuzz/harness"
)

func TestStatusStoreDefaultsToZeroStatus(t *testing.T) {
	store := harness.NewStatusStore()

	status, err := store.OrderStatus(common.HexToHash("0x01"))
	require.NoError(t, err)
	assert.False(t, status.Validated)
	assert.False(t, status.Cancelled)
	assert.False(t, status.FullyFilled())
}

func TestStatusStoreInscribeCancelled(t *testing.T) {
	store := harness.NewStatusStore()
	hash := common.HexToHash("0x02")

	require.NoError(t, store.InscribeCancelled(hash, true))
	status, err := store.OrderStatus(hash)
	require.NoError(t, err)
	assert.True(t, status.Cancelled)

	// inscription is a raw flag write, reversible by the backdoor itself
	require.NoError(t, store.InscribeCancelled(hash, false))
	status, err = store.OrderStatus(hash)
	require.NoError(t, err)
	assert.False(t, status.Cancelled)
}

func TestStatusStoreTracksIndependentFlags(t *testing.T) {
	store := harness.NewStatusStore()
	hash := common.HexToHash("0x03")

	store.MarkValidated(hash)
	store.RecordFill(hash, 1, 2)
	require.NoError(t, store.InscribeCancelled(hash, true))

	status, err := store.OrderStatus(hash)
	require.NoError(t, err)
	assert.True(t, status.Validated)
	assert.True(t, status.Cancelled)
	assert.Equal(t, uint64(1), status.NumeratorFilled)
	assert.Equal(t, uint64(2), status.DenominatorFilled)
	assert.False(t, status.FullyFilled())

	store.RecordFill(hash, 2, 2)
	status, err = store.OrderStatus(hash)
	require.NoError(t, err)
	assert.True(t, status.FullyFilled())
}

func TestAccountSet(t *testing.T) {
	contract := common.HexToAddress("0xc0de")
	accounts := harness.NewAccountSet(contract)

	assert.True(t, accounts.HasCode(contract))
	assert.False(t, accounts.HasCode(common.HexToAddress("0xe0a")))

	eoa := common.HexToAddress("0x04")
	accounts.AddContract(eoa)
	assert.True(t, accounts.HasCode(eoa))
}
