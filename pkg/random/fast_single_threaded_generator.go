package random

import (
	"math/rand/v2"
)

type fastSingleThreadedGenerator struct {
	*rand.Rand
}

// NewFastSingleThreadedGenerator creates a new SingleThreadedGenerator
// that is not suitable for cryptographic purposes. The generator is
// randomly seeded.
func NewFastSingleThreadedGenerator() SingleThreadedGenerator {
	return fastSingleThreadedGenerator{
		Rand: rand.New(
			rand.NewPCG(
				CryptoThreadSafeGenerator.Uint64(),
				CryptoThreadSafeGenerator.Uint64(),
			),
		),
	}
}

func (g fastSingleThreadedGenerator) Read(p []byte) (int, error) {
	return readFromUint64s(g.Rand.Uint64, p), nil
}

// readFromUint64s fills a byte slice using a function yielding 64 bits
// of randomness at a time, in little endian order.
func readFromUint64s(next func() uint64, p []byte) int {
	for i := 0; i < len(p); i += 8 {
		v := next()
		for j := i; j < i+8 && j < len(p); j++ {
			p[j] = byte(v)
			v >>= 8
		}
	}
	return len(p)
}
