package util

import (
	"fmt"
	"math"
	"strconv"
)

// DecimalExponentialBuckets returns bucket boundaries for Prometheus
// histograms that cover powersOf10 powers of ten, starting at
// 10^lowestPowerOf10, with stepsInBetween boundaries in between every
// pair of powers. Boundaries are spaced by a factor of
// 10^(1/(stepsInBetween+1)).
//
// Boundaries are computed with five significant digits and then parsed
// using strconv.ParseFloat(), so that every power of ten is exact and
// label values remain short.
func DecimalExponentialBuckets(lowestPowerOf10, powersOf10, stepsInBetween int) []float64 {
	significands := make([]string, 0, stepsInBetween+1)
	for i := 0; i <= stepsInBetween; i++ {
		significands = append(
			significands,
			fmt.Sprintf("%f", math.Pow(10.0, float64(i)/float64(stepsInBetween+1)))[:6])
	}

	buckets := make([]float64, 0, powersOf10*len(significands)+1)
	for exponent := lowestPowerOf10; exponent < lowestPowerOf10+powersOf10; exponent++ {
		for _, significand := range significands {
			buckets = append(buckets, mustParseBoundary(significand, exponent))
		}
	}
	return append(buckets, mustParseBoundary("1", lowestPowerOf10+powersOf10))
}

func mustParseBoundary(significand string, exponent int) float64 {
	v, err := strconv.ParseFloat(fmt.Sprintf("%se%d", significand, exponent), 64)
	if err != nil {
		panic(fmt.Sprintf("Failed to compute bucket boundary: %s", err))
	}
	return v
}
