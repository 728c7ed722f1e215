package address

import (
	"net/netip"

	"github.com/buildbarn/bb-synthgen/pkg/netrange"
	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExclusionMode determines how excluded ranges are removed from
// candidate ranges.
type ExclusionMode int

const (
	// ExclusionModeSubtract removes candidates that are identical to
	// an excluded range, and carves excluded ranges out of the
	// candidate that is picked. Addresses are never part of an
	// excluded range.
	ExclusionModeSubtract ExclusionMode = iota
	// ExclusionModeIdentical only removes candidates that are
	// identical to an excluded range. Candidates that partially
	// overlap with an excluded range are sampled as a whole.
	ExclusionModeIdentical
)

// ParseExclusionMode converts the textual name of an exclusion mode to
// an ExclusionMode. The empty string yields the default mode.
func ParseExclusionMode(s string) (ExclusionMode, error) {
	switch s {
	case "", "subtract":
		return ExclusionModeSubtract, nil
	case "identical":
		return ExclusionModeIdentical, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "Unknown exclusion mode %#v", s)
	}
}

// Parameters that constrain the address that is generated.
type Parameters struct {
	// IP version, either 4 or 6.
	Version int
	// Class of the address. Only used for public IPv4 addresses.
	Class Class
	// Whether to generate a private or a public address.
	Private bool
	// If set, generate an address within this CIDR literal instead of
	// consulting the policy tables.
	FromSubnet string
}

// Generator of IP addresses.
type Generator interface {
	Generate(parameters Parameters) (netip.Addr, error)
}

type policyGenerator struct {
	generator     random.SingleThreadedGenerator
	tables        map[netrange.Family]*PolicyTable
	exclusionMode ExclusionMode
}

// NewPolicyGenerator creates a Generator that draws addresses from
// ranges listed in policy tables. At most one policy table may be
// provided per address family.
func NewPolicyGenerator(generator random.SingleThreadedGenerator, exclusionMode ExclusionMode, tables ...*PolicyTable) Generator {
	g := &policyGenerator{
		generator:     generator,
		tables:        map[netrange.Family]*PolicyTable{},
		exclusionMode: exclusionMode,
	}
	for _, table := range tables {
		g.tables[table.Family] = table
	}
	return g
}

func (g *policyGenerator) Generate(parameters Parameters) (netip.Addr, error) {
	family, err := netrange.NewFamily(parameters.Version)
	if err != nil {
		return netip.Addr{}, err
	}
	if parameters.FromSubnet != "" {
		addr, err := netrange.SampleSubnet(g.generator, family, parameters.FromSubnet)
		if err != nil {
			return netip.Addr{}, util.StatusWrap(err, "Invalid subnet")
		}
		return addr, nil
	}

	table, ok := g.tables[family]
	if !ok {
		return netip.Addr{}, status.Errorf(codes.FailedPrecondition, "No policy table for %s is available", family)
	}
	class := parameters.Class
	if family == netrange.FamilyV4 && !parameters.Private && !class.IsValid() {
		class = validClasses[g.generator.IntN(len(validClasses))]
	}
	candidates, forbidden := table.candidates(class, parameters.Private)

	switch g.exclusionMode {
	case ExclusionModeIdentical:
		return netrange.ChooseAndSample(g.generator, candidates)
	default:
		candidate, err := netrange.Choose(g.generator, candidates)
		if err != nil {
			return netip.Addr{}, err
		}
		addr, err := netrange.SampleUnion(g.generator, netrange.Subtract(candidate, forbidden))
		if err != nil {
			return netip.Addr{}, util.StatusWrapf(err, "Candidate %s", candidate)
		}
		return addr, nil
	}
}
