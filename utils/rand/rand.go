// Package rand is a thin wrapper around `crypto/rand` that extracts secure
// entropy from the system RNG.
//
// The selection policy of the fuzzing driver draws from it so that trial
// selections cannot be skewed by a predictable seed. Functions return an
// error only if the underlying system RNG fails to produce randomness,
// which callers should treat as an irrecoverable exception.
package rand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Uint64 returns a random uint64.
func Uint64() (uint64, error) {
	buffer := make([]byte, 8)
	if _, err := rand.Read(buffer); err != nil {
		return 0, fmt.Errorf("crypto/rand read failed: %w", err)
	}
	return binary.LittleEndian.Uint64(buffer), nil
}

// Uint64n returns a random uint64 strictly less than n, which must be
// strictly positive. The draw is uniform: values are rejected and redrawn
// rather than reduced modulo n.
func Uint64n(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("n should be strictly positive, got %d", n)
	}
	// sample from the largest multiple of n that fits in a uint64 and
	// reject anything above it, so the final reduction is unbiased
	max := ^uint64(0) - (^uint64(0)%n+1)%n
	for {
		r, err := Uint64()
		if err != nil {
			return 0, err
		}
		if r <= max {
			return r % n, nil
		}
	}
}

// Uintn returns a random uint strictly less than n, which must be strictly
// positive.
func Uintn(n uint) (uint, error) {
	r, err := Uint64n(uint64(n))
	if err != nil {
		return 0, err
	}
	return uint(r), nil
}
