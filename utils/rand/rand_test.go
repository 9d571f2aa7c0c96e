package rand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portside/seafuzz/utils/rand"
)

func TestUint64nBounds(t *testing.T) {
	for _, n := range []uint64{1, 2, 7, 1 << 32, ^uint64(0)} {
		for i := 0; i < 50; i++ {
			r, err := rand.Uint64n(n)
			require.NoError(t, err)
			assert.Less(t, r, n)
		}
	}
}

func TestUint64nRejectsZero(t *testing.T) {
	_, err := rand.Uint64n(0)
	assert.Error(t, err)
}

func TestUintnBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		r, err := rand.Uintn(3)
		require.NoError(t, err)
		assert.Less(t, r, uint(3))
	}

	_, err := rand.Uintn(0)
	assert.Error(t, err)
}

func TestUint64nCoversRange(t *testing.T) {
	seen := make(map[uint64]struct{})
	for i := 0; i < 200; i++ {
		r, err := rand.Uint64n(2)
		require.NoError(t, err)
		seen[r] = struct{}{}
	}
	assert.Len(t, seen, 2, "both values of a 2-element range should appear in 200 draws")
}
