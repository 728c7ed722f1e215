package netrange

import (
	"net/netip"

	"github.com/buildbarn/bb-synthgen/pkg/random"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lukechampine.com/uint128"
)

var errNoCandidates = status.Error(codes.FailedPrecondition, "No candidate address ranges remain after exclusion")

// SampleWithin returns an address that is drawn uniformly from a range.
func SampleWithin(generator random.SingleThreadedGenerator, r Range) netip.Addr {
	var offset uint128.Uint128
	if hostBits := r.hostBits(); hostBits == 128 {
		offset = random.Uint128(generator)
	} else {
		offset = random.Uint128N(generator, uint128.From64(1).Lsh(uint(hostBits)))
	}
	return fromUint128(r.Family(), toUint128(r.First()).Add(offset))
}

// SampleSubnet parses a CIDR literal and returns an address that is
// drawn uniformly from it.
func SampleSubnet(generator random.SingleThreadedGenerator, family Family, literal string) (netip.Addr, error) {
	r, err := ParseRange(family, literal)
	if err != nil {
		return netip.Addr{}, err
	}
	return SampleWithin(generator, r), nil
}

// Choose picks one of the candidate ranges uniformly at random. Small
// ranges are thus as likely to be picked as large ones.
func Choose(generator random.SingleThreadedGenerator, candidates []Range) (Range, error) {
	if len(candidates) == 0 {
		return Range{}, errNoCandidates
	}
	return candidates[generator.IntN(len(candidates))], nil
}

// ChooseAndSample picks one of the candidate ranges uniformly at random
// and returns an address drawn uniformly from it.
func ChooseAndSample(generator random.SingleThreadedGenerator, candidates []Range) (netip.Addr, error) {
	r, err := Choose(generator, candidates)
	if err != nil {
		return netip.Addr{}, err
	}
	return SampleWithin(generator, r), nil
}

// SampleUnion returns an address drawn uniformly from the union of a
// list of disjoint ranges, such as the ones returned by Subtract().
// Ranges are weighted by their size.
func SampleUnion(generator random.SingleThreadedGenerator, ranges []Range) (netip.Addr, error) {
	switch len(ranges) {
	case 0:
		return netip.Addr{}, errNoCandidates
	case 1:
		return SampleWithin(generator, ranges[0]), nil
	}

	total := uint128.Zero
	for _, r := range ranges {
		total = total.Add(r.Size())
	}
	offset := random.Uint128N(generator, total)
	for _, r := range ranges {
		size := r.Size()
		if offset.Cmp(size) < 0 {
			return fromUint128(r.Family(), toUint128(r.First()).Add(offset)), nil
		}
		offset = offset.Sub(size)
	}
	panic("Offset exceeds the total size of all ranges")
}
