package netrange

import (
	"slices"
)

// Exclude removes all candidate ranges that are identical to one of the
// excluded ranges. Candidates that only partially overlap with an
// excluded range are retained as a whole. The order of the surviving
// candidates is preserved.
//
// Use Subtract() to remove excluded addresses from a candidate range
// geometrically.
func Exclude(candidates, excluded []Range) []Range {
	survivors := make([]Range, 0, len(candidates))
	for _, candidate := range candidates {
		if !slices.Contains(excluded, candidate) {
			survivors = append(survivors, candidate)
		}
	}
	return survivors
}

// Subtract removes all addresses contained in the excluded ranges from
// a candidate range. The remaining addresses are returned as a list of
// disjoint ranges, sorted by address.
func Subtract(candidate Range, excluded []Range) []Range {
	pieces := []Range{candidate}
	for _, e := range excluded {
		next := make([]Range, 0, len(pieces))
		for _, piece := range pieces {
			next = append(next, subtractOne(piece, e)...)
		}
		pieces = next
	}
	return pieces
}

func subtractOne(r, excluded Range) []Range {
	if !r.Overlaps(excluded) {
		return []Range{r}
	}
	if excluded.ContainsRange(r) {
		return nil
	}
	// The excluded range is a strict subset of r. Only one of the
	// halves of r contains it.
	lower, upper := r.split()
	if lower.ContainsRange(excluded) {
		return append(subtractOne(lower, excluded), upper)
	}
	return append([]Range{lower}, subtractOne(upper, excluded)...)
}
