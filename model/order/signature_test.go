package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portside/seafuzz/model/order"
)

func TestStandardSignatureLength(t *testing.T) {
	assert.True(t, order.IsStandardSignatureLength(64), "EIP-2098 compact length")
	assert.True(t, order.IsStandardSignatureLength(65), "extended length")

	assert.False(t, order.IsStandardSignatureLength(0))
	assert.False(t, order.IsStandardSignatureLength(63))
	assert.False(t, order.IsStandardSignatureLength(66))
	assert.False(t, order.IsStandardSignatureLength(128))
}

func TestBulkSignatureLength(t *testing.T) {
	// 35 + 32k and 35 + 32k + 1 are the admissible shapes
	assert.True(t, order.IsBulkSignatureLength(67), "35+32")
	assert.True(t, order.IsBulkSignatureLength(68), "35+32+1")
	assert.True(t, order.IsBulkSignatureLength(99), "35+64")
	assert.True(t, order.IsBulkSignatureLength(835), "35+800, largest even shape")
	assert.True(t, order.IsBulkSignatureLength(836), "largest admissible length")

	// standard lengths are not bulk lengths
	assert.False(t, order.IsBulkSignatureLength(64), "lower bound is exclusive")
	assert.False(t, order.IsBulkSignatureLength(65), "(65-35)%32 = 30")

	assert.False(t, order.IsBulkSignatureLength(66), "remainder 31")
	assert.False(t, order.IsBulkSignatureLength(69), "remainder 2")
	assert.False(t, order.IsBulkSignatureLength(837), "upper bound is exclusive")
	assert.False(t, order.IsBulkSignatureLength(868), "shape valid but too long")
	assert.False(t, order.IsBulkSignatureLength(0))
}
