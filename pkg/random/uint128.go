package random

import (
	"math"

	"lukechampine.com/uint128"
)

// Uint64N generates a number in range [0, n). Values of n that fit in an
// int64 are forwarded to Int64N(), so that the draw remains visible to
// mocks. Larger values use rejection sampling on Uint64().
func Uint64N(generator SingleThreadedGenerator, n uint64) uint64 {
	if n == 0 {
		panic("invalid argument to Uint64N")
	}
	if n <= math.MaxInt64 {
		return uint64(generator.Int64N(int64(n)))
	}
	for {
		if v := generator.Uint64(); v < n {
			return v
		}
	}
}

// Uint128 generates an arbitrary 128-bit integer value.
func Uint128(generator SingleThreadedGenerator) uint128.Uint128 {
	lo := generator.Uint64()
	hi := generator.Uint64()
	return uint128.New(lo, hi)
}

// Uint128N generates a number in range [0, n). It is used to draw
// offsets within IPv6 address ranges and time spans that exceed the
// range of 64-bit integers.
func Uint128N(generator SingleThreadedGenerator, n uint128.Uint128) uint128.Uint128 {
	if n.IsZero() {
		panic("invalid argument to Uint128N")
	}
	if n.Hi == 0 {
		return uint128.From64(Uint64N(generator, n.Lo))
	}
	mask := uint128.Max.Rsh(uint(n.Sub64(1).LeadingZeros()))
	for {
		if v := Uint128(generator).And(mask); v.Cmp(n) < 0 {
			return v
		}
	}
}
