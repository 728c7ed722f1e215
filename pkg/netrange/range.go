package netrange

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"lukechampine.com/uint128"
)

// Family of an address range.
type Family int

const (
	// FamilyV4 corresponds to the 32-bit IPv4 address space.
	FamilyV4 Family = 4
	// FamilyV6 corresponds to the 128-bit IPv6 address space.
	FamilyV6 Family = 6
)

// Bits returns the width of addresses of this family.
func (f Family) Bits() int {
	if f == FamilyV4 {
		return 32
	}
	return 128
}

func (f Family) String() string {
	return fmt.Sprintf("IPv%d", int(f))
}

// NewFamily converts an IP version number to a Family.
func NewFamily(version int) (Family, error) {
	switch version {
	case 4:
		return FamilyV4, nil
	case 6:
		return FamilyV6, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "Unsupported IP version %d", version)
	}
}

// Range of addresses, denoted by a network address and a prefix
// length. It corresponds to the inclusive interval [First(), Last()].
type Range struct {
	prefix netip.Prefix
}

// ParseRange parses a CIDR literal of a given family. Host bits in the
// literal are cleared, meaning the resulting range always starts at the
// network address.
func ParseRange(family Family, literal string) (Range, error) {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(literal))
	if err != nil {
		return Range{}, status.Errorf(codes.InvalidArgument, "Invalid CIDR literal %#v: %s", literal, err)
	}
	if prefix.Addr().BitLen() != family.Bits() {
		return Range{}, status.Errorf(codes.InvalidArgument, "CIDR literal %#v is not an %s range", literal, family)
	}
	return Range{prefix: prefix.Masked()}, nil
}

// MustParseRanges parses a list of CIDR literals. It is intended to be
// used for tables that are part of the source code.
func MustParseRanges(family Family, literals ...string) []Range {
	ranges := make([]Range, 0, len(literals))
	for _, literal := range literals {
		r, err := ParseRange(family, literal)
		if err != nil {
			panic(err)
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// Family returns the address family of the range.
func (r Range) Family() Family {
	if r.prefix.Addr().Is4() {
		return FamilyV4
	}
	return FamilyV6
}

// Prefix returns the range in the form of a netip.Prefix.
func (r Range) Prefix() netip.Prefix {
	return r.prefix
}

func (r Range) String() string {
	return r.prefix.String()
}

func (r Range) hostBits() int {
	return r.Family().Bits() - r.prefix.Bits()
}

// First returns the lowest address in the range.
func (r Range) First() netip.Addr {
	return r.prefix.Addr()
}

// Last returns the highest address in the range.
func (r Range) Last() netip.Addr {
	hostBits := r.hostBits()
	if hostBits == 128 {
		return fromUint128(FamilyV6, uint128.Max)
	}
	return fromUint128(r.Family(), toUint128(r.First()).Add(hostMask(hostBits)))
}

// Size returns the number of addresses in the range. As 2^128 cannot
// be represented, the size of ::/0 is reported as 2^128-1.
func (r Range) Size() uint128.Uint128 {
	hostBits := r.hostBits()
	if hostBits == 128 {
		return uint128.Max
	}
	return uint128.From64(1).Lsh(uint(hostBits))
}

// Contains returns whether an address is part of the range.
func (r Range) Contains(addr netip.Addr) bool {
	return r.prefix.Contains(addr)
}

// ContainsRange returns whether another range is a subset of this one.
func (r Range) ContainsRange(other Range) bool {
	return r.prefix.Bits() <= other.prefix.Bits() && r.prefix.Contains(other.prefix.Addr())
}

// Overlaps returns whether two ranges have any addresses in common.
func (r Range) Overlaps(other Range) bool {
	return r.prefix.Overlaps(other.prefix)
}

// split a range into its lower and upper half. The caller must ensure
// that the range contains more than one address.
func (r Range) split() (Range, Range) {
	bits := r.prefix.Bits() + 1
	family := r.Family()
	upper := toUint128(r.First()).Add(uint128.From64(1).Lsh(uint(family.Bits() - bits)))
	return Range{prefix: netip.PrefixFrom(r.First(), bits)},
		Range{prefix: netip.PrefixFrom(fromUint128(family, upper), bits)}
}

func hostMask(hostBits int) uint128.Uint128 {
	if hostBits == 0 {
		return uint128.Zero
	}
	return uint128.Max.Rsh(uint(128 - hostBits))
}

func toUint128(addr netip.Addr) uint128.Uint128 {
	if addr.Is4() {
		b := addr.As4()
		return uint128.From64(uint64(binary.BigEndian.Uint32(b[:])))
	}
	b := addr.As16()
	return uint128.FromBytesBE(b[:])
}

func fromUint128(family Family, v uint128.Uint128) netip.Addr {
	if family == FamilyV4 {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v.Lo))
		return netip.AddrFrom4(b)
	}
	var b [16]byte
	v.PutBytesBE(b[:])
	return netip.AddrFrom16(b)
}
