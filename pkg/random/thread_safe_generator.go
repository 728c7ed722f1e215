package random

import (
	"sync"
)

// ThreadSafeGenerator is identical to SingleThreadedGenerator, except
// that it is safe to use from within multiple goroutines without
// additional locking. These generators may be slower than their
// single-threaded counterparts.
type ThreadSafeGenerator interface {
	SingleThreadedGenerator

	IsThreadSafe()
}

type lockingGenerator struct {
	lock sync.Mutex
	base SingleThreadedGenerator
}

// NewThreadSafeGenerator converts a SingleThreadedGenerator to a
// ThreadSafeGenerator by serializing all calls through a mutex. This
// makes it possible to share a seeded generator between HTTP request
// handlers, while retaining a deterministic sequence of values for
// every individual call.
func NewThreadSafeGenerator(base SingleThreadedGenerator) ThreadSafeGenerator {
	return &lockingGenerator{base: base}
}

func (g *lockingGenerator) IsThreadSafe() {}

func (g *lockingGenerator) Float64() float64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Float64()
}

func (g *lockingGenerator) Int64N(n int64) int64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Int64N(n)
}

func (g *lockingGenerator) IntN(n int) int {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.IntN(n)
}

func (g *lockingGenerator) Read(p []byte) (int, error) {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Read(p)
}

func (g *lockingGenerator) Shuffle(n int, swap func(i, j int)) {
	g.lock.Lock()
	defer g.lock.Unlock()
	g.base.Shuffle(n, swap)
}

func (g *lockingGenerator) Uint32() uint32 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Uint32()
}

func (g *lockingGenerator) Uint64() uint64 {
	g.lock.Lock()
	defer g.lock.Unlock()
	return g.base.Uint64()
}
