package harness

import "time"

// SystemClock reports the wall-clock time in unix seconds.
type SystemClock struct{}

func NewSystemClock() SystemClock {
	return SystemClock{}
}

func (SystemClock) Now() uint64 {
	return uint64(time.Now().Unix())
}

// FixedClock reports a constant time, for deterministic tests.
type FixedClock uint64

func (c FixedClock) Now() uint64 {
	return uint64(c)
}
