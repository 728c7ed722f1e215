package random_test

import (
	"sync"
	"testing"

	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/stretchr/testify/require"

	"lukechampine.com/uint128"
)

func TestSingleThreadedGenerator(t *testing.T) {
	for name, generator := range map[string]random.SingleThreadedGenerator{
		"FastSingleThreaded": random.NewFastSingleThreadedGenerator(),
		"FastThreadSafe":     random.FastThreadSafeGenerator,
		"CryptoThreadSafe":   random.CryptoThreadSafeGenerator,
		"Seeded":             random.NewSeededGenerator(42),
		"Locking":            random.NewThreadSafeGenerator(random.NewSeededGenerator(7)),
	} {
		t.Run(name, func(t *testing.T) {
			t.Run("IntN", func(t *testing.T) {
				for i := 0; i < 100; i++ {
					v := generator.IntN(42)
					require.LessOrEqual(t, 0, v)
					require.Greater(t, 42, v)
				}
			})

			t.Run("Int64N", func(t *testing.T) {
				for i := 0; i < 100; i++ {
					v := generator.Int64N(1 << 40)
					require.LessOrEqual(t, int64(0), v)
					require.Greater(t, int64(1<<40), v)
				}
			})

			t.Run("Read", func(t *testing.T) {
				var b [13]byte
				n, err := generator.Read(b[:])
				require.NoError(t, err)
				require.Equal(t, len(b), n)
			})

			t.Run("Shuffle", func(t *testing.T) {
				called := false
				for !called {
					generator.Shuffle(100, func(i, j int) {
						called = true
					})
				}
			})

			t.Run("Uint64", func(t *testing.T) {
				generator.Uint64()
			})
		})
	}
}

func TestSeededGenerator(t *testing.T) {
	t.Run("Reproducible", func(t *testing.T) {
		a := random.NewSeededGenerator(1234)
		b := random.NewSeededGenerator(1234)
		for i := 0; i < 100; i++ {
			require.Equal(t, a.Uint64(), b.Uint64())
		}

		var bufA, bufB [32]byte
		a.Read(bufA[:])
		b.Read(bufB[:])
		require.Equal(t, bufA, bufB)
	})

	t.Run("ZeroSeed", func(t *testing.T) {
		// Seed zero must not yield a generator that is stuck on
		// zero, as that is a fixed point of xorshift.
		g := random.NewSeededGenerator(0)
		seen := map[uint64]struct{}{}
		for i := 0; i < 10; i++ {
			seen[g.Uint64()] = struct{}{}
		}
		require.Greater(t, len(seen), 1)
	})
}

func TestUint128N(t *testing.T) {
	generator := random.NewSeededGenerator(99)

	t.Run("Small", func(t *testing.T) {
		n := uint128.From64(10)
		for i := 0; i < 100; i++ {
			require.Equal(t, -1, random.Uint128N(generator, n).Cmp(n))
		}
	})

	t.Run("Large", func(t *testing.T) {
		// 2^80 + 3 requires both halves to be drawn.
		n := uint128.From64(1).Lsh(80).Add64(3)
		for i := 0; i < 100; i++ {
			require.Equal(t, -1, random.Uint128N(generator, n).Cmp(n))
		}
	})

	t.Run("One", func(t *testing.T) {
		require.True(t, random.Uint128N(generator, uint128.From64(1)).IsZero())
	})

	t.Run("Zero", func(t *testing.T) {
		require.Panics(t, func() {
			random.Uint128N(generator, uint128.Zero)
		})
	})
}

func TestUint64N(t *testing.T) {
	generator := random.NewSeededGenerator(5)
	for _, n := range []uint64{1, 3, 1 << 63, 1<<64 - 1} {
		for i := 0; i < 20; i++ {
			require.Less(t, random.Uint64N(generator, n), n)
		}
	}
}

func TestFastThreadSafeGenerator(t *testing.T) {
	t.Run("Concurrent", func(t *testing.T) {
		// Values are drawn from many goroutines at once, as
		// happens when the HTTP server handles parallel requests.
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var b [32]byte
				for j := 0; j < 1000; j++ {
					random.FastThreadSafeGenerator.IntN(10)
					random.FastThreadSafeGenerator.Read(b[:])
				}
			}()
		}
		wg.Wait()
	})

	t.Run("ReadFillsBuffer", func(t *testing.T) {
		// The chance of 64 bytes all coming out zero is
		// negligible.
		var b [64]byte
		n, err := random.FastThreadSafeGenerator.Read(b[:])
		require.NoError(t, err)
		require.Equal(t, len(b), n)
		require.NotEqual(t, [64]byte{}, b)
	})
}
