package random

import (
	"math/rand/v2"
)

// runtimeSource is a stateless rand.Source that forwards to the
// runtime's global generator. The runtime's generator is safe for
// concurrent use, so a rand.Rand wrapping it may be shared between
// goroutines.
type runtimeSource struct{}

func (runtimeSource) Uint64() uint64 {
	return rand.Uint64()
}

var _ rand.Source = runtimeSource{}

type fastThreadSafeGenerator struct {
	*rand.Rand
}

func (fastThreadSafeGenerator) IsThreadSafe() {}

func (g fastThreadSafeGenerator) Read(p []byte) (int, error) {
	return readFromUint64s(g.Rand.Uint64, p), nil
}

// FastThreadSafeGenerator is the source of randomness that serves
// requests when the configuration selects random source "fast", and
// that synthgen_sample uses when no seed is provided. Its output is
// not reproducible between runs and must not be used for secrets.
var FastThreadSafeGenerator ThreadSafeGenerator = fastThreadSafeGenerator{
	Rand: rand.New(runtimeSource{}),
}
