// Package randutil builds reproducible random sources for generated inputs.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand derived from a single int64 seed, so a
// seed printed in a log reproduces the same sequence.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// ResolveSeed returns *seed when set, otherwise one taken from the clock.
func ResolveSeed(seed *int64, clock quartz.Clock) int64 {
	if seed != nil {
		return *seed
	}
	return clock.Now().UnixNano()
}

// splitmix64 finaliser
func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	return x ^ x>>31
}
