package address

import (
	"strings"

	"github.com/buildbarn/bb-synthgen/pkg/netrange"
)

// Class of an IPv4 address, as used prior to the introduction of
// CIDR. Class D and E ranges are never generated.
type Class byte

const (
	// ClassRandom causes one of the classes A, B and C to be picked
	// uniformly at random.
	ClassRandom Class = 0
	ClassA      Class = 'a'
	ClassB      Class = 'b'
	ClassC      Class = 'c'
)

var validClasses = [...]Class{ClassA, ClassB, ClassC}

// ParseClass converts a textual class name, such as "a" or "B", to a
// Class. Any other value yields ClassRandom.
func ParseClass(s string) Class {
	switch strings.ToLower(s) {
	case "a":
		return ClassA
	case "b":
		return ClassB
	case "c":
		return ClassC
	default:
		return ClassRandom
	}
}

// IsValid returns true if the class is one of A, B or C.
func (c Class) IsValid() bool {
	return c == ClassA || c == ClassB || c == ClassC
}

func (c Class) String() string {
	if !c.IsValid() {
		return "random"
	}
	return string(rune(c))
}

// PolicyTable contains the ranges from which addresses of a single
// address family are generated.
type PolicyTable struct {
	Family netrange.Family
	// Range of addresses belonging to every class. Only used for
	// public IPv4 addresses.
	Classes map[Class]netrange.Range
	// Ranges from which private addresses are generated.
	Private []netrange.Range
	// Ranges from which public addresses are generated. Not used for
	// IPv4, where the class range is used instead.
	Public []netrange.Range
	// Ranges from which no addresses are ever generated.
	Excluded []netrange.Range
}

// DefaultIPv4PolicyTable returns the policy table for IPv4, containing
// the private networks of RFC 1918 and the special-purpose networks
// listed in the IANA IPv4 Special-Purpose Address Registry.
func DefaultIPv4PolicyTable() *PolicyTable {
	classes := netrange.MustParseRanges(netrange.FamilyV4, "0.0.0.0/1", "128.0.0.0/2", "192.0.0.0/3")
	return &PolicyTable{
		Family: netrange.FamilyV4,
		Classes: map[Class]netrange.Range{
			ClassA: classes[0],
			ClassB: classes[1],
			ClassC: classes[2],
		},
		Private: netrange.MustParseRanges(
			netrange.FamilyV4,
			"10.0.0.0/8",
			"172.16.0.0/12",
			"192.168.0.0/16"),
		Excluded: netrange.MustParseRanges(
			netrange.FamilyV4,
			"0.0.0.0/8",
			"100.64.0.0/10",
			// Loopback.
			"127.0.0.0/8",
			// Link-local.
			"169.254.0.0/16",
			"192.0.0.0/24",
			"192.0.2.0/24",
			"192.31.196.0/24",
			"192.52.193.0/24",
			// 6to4 relay anycast.
			"192.88.99.0/24",
			"192.175.48.0/24",
			"198.18.0.0/15",
			"198.51.100.0/24",
			"203.0.113.0/24",
			// Multicast.
			"224.0.0.0/4",
			"240.0.0.0/4",
			"255.255.255.255/32"),
	}
}

// DefaultIPv6PolicyTable returns the policy table for IPv6. Private
// addresses are Unique Local Addresses (RFC 4193). Public addresses
// are taken from the 2001::/16 block.
//
// The global unicast block 2000::/3 is not part of the excluded
// ranges, as that would leave no public addresses at all.
func DefaultIPv6PolicyTable() *PolicyTable {
	return &PolicyTable{
		Family: netrange.FamilyV6,
		Private: netrange.MustParseRanges(
			netrange.FamilyV6,
			"fc00::/7",
			"fc00::/8",
			"fd00::/8"),
		Public: netrange.MustParseRanges(
			netrange.FamilyV6,
			"2001::/16",
			"2001::/32",
			"2001::/48",
			"2001::/56",
			"2001::/64"),
		Excluded: netrange.MustParseRanges(
			netrange.FamilyV6,
			// Unspecified.
			"::/128",
			// Loopback.
			"::1/128",
			// Link-local.
			"fe80::/10",
			// Multicast.
			"ff00::/8",
			// Documentation.
			"2001:db8::/32",
			// 6to4.
			"2002::/16"),
	}
}

// candidates returns the ranges from which an address may be drawn,
// together with the ranges that need to be carved out of them to
// ensure that the address is not reserved. Candidates that are
// identical to one of the carved out ranges have already been removed.
func (pt *PolicyTable) candidates(class Class, private bool) ([]netrange.Range, []netrange.Range) {
	if private {
		return netrange.Exclude(pt.Private, pt.Excluded), pt.Excluded
	}
	forbidden := append(append([]netrange.Range(nil), pt.Private...), pt.Excluded...)
	if pt.Family == netrange.FamilyV4 {
		classRange, ok := pt.Classes[class]
		if !ok {
			return nil, forbidden
		}
		return netrange.Exclude([]netrange.Range{classRange}, forbidden), forbidden
	}
	return netrange.Exclude(pt.Public, forbidden), forbidden
}
