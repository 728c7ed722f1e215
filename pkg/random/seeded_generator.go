package random

import (
	"math/rand/v2"

	"github.com/lazybeaver/xorshift"
)

// xorShiftSource adapts an xorshift64* sequence to rand.Source.
type xorShiftSource struct {
	sequence interface{ Next() uint64 }
}

func (s *xorShiftSource) Uint64() uint64 {
	return s.sequence.Next()
}

type seededGenerator struct {
	*rand.Rand
	source *xorShiftSource
}

// NewSeededGenerator creates a SingleThreadedGenerator whose entire
// output is determined by the provided seed. It can be used to make
// generated datasets reproducible within a single build, or to obtain
// deterministic values as part of unit testing.
func NewSeededGenerator(seed uint64) SingleThreadedGenerator {
	// xorshift never leaves the all-zeroes state.
	if seed == 0 {
		seed = 1
	}
	source := &xorShiftSource{
		sequence: xorshift.NewXorShift64Star(seed),
	}
	return seededGenerator{
		Rand:   rand.New(source),
		source: source,
	}
}

func (g seededGenerator) Read(p []byte) (int, error) {
	return readFromUint64s(g.source.Uint64, p), nil
}
