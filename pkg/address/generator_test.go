package address_test

import (
	"net/netip"
	"testing"

	"github.com/buildbarn/bb-synthgen/internal/mock"
	"github.com/buildbarn/bb-synthgen/pkg/address"
	"github.com/buildbarn/bb-synthgen/pkg/netrange"
	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"pgregory.net/rapid"
)

func newDefaultGenerator(generator random.SingleThreadedGenerator, exclusionMode address.ExclusionMode) address.Generator {
	return address.NewPolicyGenerator(
		generator,
		exclusionMode,
		address.DefaultIPv4PolicyTable(),
		address.DefaultIPv6PolicyTable())
}

func requireNotExcluded(t require.TestingT, table *address.PolicyTable, addr netip.Addr) {
	for _, excluded := range table.Excluded {
		require.False(t, excluded.Contains(addr), "%s is part of excluded range %s", addr, excluded)
	}
}

func requireInAny(t require.TestingT, ranges []netrange.Range, addr netip.Addr) {
	for _, r := range ranges {
		if r.Contains(addr) {
			return
		}
	}
	require.Fail(t, "Address is not part of any of the ranges", "%s not in %v", addr, ranges)
}

func TestGeneratorFromSubnet(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("IPv4", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		generator.EXPECT().Int64N(int64(16777216)).Return(int64(5))

		addr, err := newDefaultGenerator(generator, address.ExclusionModeSubtract).Generate(address.Parameters{
			Version:    4,
			FromSubnet: "10.0.0.0/8",
		})
		require.NoError(t, err)
		require.Equal(t, "10.0.0.5", addr.String())
	})

	t.Run("IPv6", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		gomock.InOrder(
			generator.EXPECT().Uint64().Return(uint64(0xabcd)),
			generator.EXPECT().Uint64().Return(uint64(0)))

		addr, err := newDefaultGenerator(generator, address.ExclusionModeSubtract).Generate(address.Parameters{
			Version:    6,
			Private:    true,
			FromSubnet: "2402:9400:1000:11::/64",
		})
		require.NoError(t, err)
		require.Equal(t, "2402:9400:1000:11::abcd", addr.String())
	})

	t.Run("Malformed", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)

		_, err := newDefaultGenerator(generator, address.ExclusionModeSubtract).Generate(address.Parameters{
			Version:    4,
			FromSubnet: "2402:9400:1000:11::/64",
		})
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid subnet: CIDR literal \"2402:9400:1000:11::/64\" is not an IPv4 range"), err)
	})

	t.Run("Range", func(t *testing.T) {
		g := newDefaultGenerator(random.NewFastSingleThreadedGenerator(), address.ExclusionModeSubtract)
		subnet := netrange.MustParseRanges(netrange.FamilyV4, "10.0.0.0/8")[0]
		for i := 0; i < 1000; i++ {
			addr, err := g.Generate(address.Parameters{Version: 4, FromSubnet: "10.0.0.0/8"})
			require.NoError(t, err)
			require.True(t, subnet.Contains(addr))
		}
	})
}

func TestGeneratorUnknownVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockSingleThreadedGenerator(ctrl)

	_, err := newDefaultGenerator(generator, address.ExclusionModeSubtract).Generate(address.Parameters{Version: 5})
	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unsupported IP version 5"), err)
}

func TestGeneratorMissingPolicyTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockSingleThreadedGenerator(ctrl)

	_, err := address.NewPolicyGenerator(generator, address.ExclusionModeSubtract, address.DefaultIPv4PolicyTable()).
		Generate(address.Parameters{Version: 6})
	testutil.RequireEqualStatus(t, status.Error(codes.FailedPrecondition, "No policy table for IPv6 is available"), err)
}

func TestGeneratorIdenticalExclusion(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("PrivateIPv4", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		generator.EXPECT().IntN(3).Return(1)
		generator.EXPECT().Int64N(int64(1048576)).Return(int64(0x10203))

		addr, err := newDefaultGenerator(generator, address.ExclusionModeIdentical).Generate(address.Parameters{
			Version: 4,
			Private: true,
		})
		require.NoError(t, err)
		require.Equal(t, "172.17.2.3", addr.String())
	})

	t.Run("PublicIPv4", func(t *testing.T) {
		// The class range partially overlaps with private and
		// excluded ranges. It is sampled as a whole.
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		gomock.InOrder(
			generator.EXPECT().IntN(3).Return(0),
			generator.EXPECT().IntN(1).Return(0),
			generator.EXPECT().Int64N(int64(1<<31)).Return(int64(0x0a000001)))

		addr, err := newDefaultGenerator(generator, address.ExclusionModeIdentical).Generate(address.Parameters{
			Version: 4,
			Class:   address.ClassRandom,
		})
		require.NoError(t, err)
		require.Equal(t, "10.0.0.1", addr.String())
	})

	t.Run("PublicIPv6", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		gomock.InOrder(
			generator.EXPECT().IntN(5).Return(4),
			generator.EXPECT().Uint64().Return(uint64(0x42)),
			generator.EXPECT().Uint64().Return(uint64(0)))

		addr, err := newDefaultGenerator(generator, address.ExclusionModeIdentical).Generate(address.Parameters{
			Version: 6,
		})
		require.NoError(t, err)
		require.Equal(t, "2001::42", addr.String())
	})
}

func TestGeneratorSubtractExclusion(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("PrivateIPv4", func(t *testing.T) {
		// Private ranges don't overlap with any excluded ranges,
		// meaning they are sampled as a whole.
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		generator.EXPECT().IntN(3).Return(2)
		generator.EXPECT().Int64N(int64(65536)).Return(int64(0x0102))

		addr, err := newDefaultGenerator(generator, address.ExclusionModeSubtract).Generate(address.Parameters{
			Version: 4,
			Private: true,
		})
		require.NoError(t, err)
		require.Equal(t, "192.168.1.2", addr.String())
	})

	t.Run("EmptyDomain", func(t *testing.T) {
		ranges := netrange.MustParseRanges(netrange.FamilyV4, "10.0.0.0/8")
		table := &address.PolicyTable{
			Family:   netrange.FamilyV4,
			Private:  ranges,
			Excluded: ranges,
		}
		for _, exclusionMode := range []address.ExclusionMode{address.ExclusionModeIdentical, address.ExclusionModeSubtract} {
			generator := mock.NewMockSingleThreadedGenerator(ctrl)

			_, err := address.NewPolicyGenerator(generator, exclusionMode, table).Generate(address.Parameters{
				Version: 4,
				Private: true,
			})
			testutil.RequireEqualStatus(t, status.Error(codes.FailedPrecondition, "No candidate address ranges remain after exclusion"), err)
		}
	})

	t.Run("FullyCarved", func(t *testing.T) {
		table := &address.PolicyTable{
			Family:   netrange.FamilyV4,
			Private:  netrange.MustParseRanges(netrange.FamilyV4, "10.0.0.0/9"),
			Excluded: netrange.MustParseRanges(netrange.FamilyV4, "10.0.0.0/8"),
		}
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		generator.EXPECT().IntN(1).Return(0)

		_, err := address.NewPolicyGenerator(generator, address.ExclusionModeSubtract, table).Generate(address.Parameters{
			Version: 4,
			Private: true,
		})
		testutil.RequireEqualStatus(t, status.Error(codes.FailedPrecondition, "Candidate 10.0.0.0/9: No candidate address ranges remain after exclusion"), err)
	})
}

func TestGeneratorHonorsValidClass(t *testing.T) {
	g := newDefaultGenerator(random.NewFastSingleThreadedGenerator(), address.ExclusionModeSubtract)
	v4 := address.DefaultIPv4PolicyTable()

	for _, class := range []address.Class{address.ClassA, address.ClassB, address.ClassC} {
		t.Run(class.String(), func(t *testing.T) {
			for i := 0; i < 1000; i++ {
				addr, err := g.Generate(address.Parameters{Version: 4, Class: class})
				require.NoError(t, err)
				require.True(t, v4.Classes[class].Contains(addr), "%s is not part of class %s", addr, class)
			}
		})
	}

	t.Run("Random", func(t *testing.T) {
		// Classes outside of A, B and C are randomized, meaning
		// all classes are eventually observed.
		seen := map[address.Class]bool{}
		for i := 0; i < 1000; i++ {
			addr, err := g.Generate(address.Parameters{Version: 4, Class: address.Class('z')})
			require.NoError(t, err)
			for class, r := range v4.Classes {
				if r.Contains(addr) {
					seen[class] = true
				}
			}
		}
		require.Equal(t, map[address.Class]bool{
			address.ClassA: true,
			address.ClassB: true,
			address.ClassC: true,
		}, seen)
	})
}

func TestGeneratorProperties(t *testing.T) {
	v4 := address.DefaultIPv4PolicyTable()
	v6 := address.DefaultIPv6PolicyTable()

	rapid.Check(t, func(t *rapid.T) {
		g := newDefaultGenerator(random.NewSeededGenerator(rapid.Uint64().Draw(t, "seed")), address.ExclusionModeSubtract)
		version := rapid.SampledFrom([]int{4, 6}).Draw(t, "version")
		private := rapid.Bool().Draw(t, "private")
		class := rapid.SampledFrom([]address.Class{address.ClassRandom, address.ClassA, address.ClassB, address.ClassC}).Draw(t, "class")

		addr, err := g.Generate(address.Parameters{
			Version: version,
			Class:   class,
			Private: private,
		})
		require.NoError(t, err)

		table := v4
		if version == 6 {
			table = v6
			require.True(t, addr.Is6())
		} else {
			require.True(t, addr.Is4())
		}
		requireNotExcluded(t, table, addr)
		if private {
			requireInAny(t, table.Private, addr)
		} else {
			for _, r := range table.Private {
				require.False(t, r.Contains(addr), "Public address %s is part of private range %s", addr, r)
			}
		}
	})
}

func TestParseClass(t *testing.T) {
	require.Equal(t, address.ClassA, address.ParseClass("a"))
	require.Equal(t, address.ClassB, address.ParseClass("B"))
	require.Equal(t, address.ClassC, address.ParseClass("c"))
	require.Equal(t, address.ClassRandom, address.ParseClass(""))
	require.Equal(t, address.ClassRandom, address.ParseClass("r"))
	require.Equal(t, address.ClassRandom, address.ParseClass("abc"))
}

func TestParseExclusionMode(t *testing.T) {
	mode, err := address.ParseExclusionMode("")
	require.NoError(t, err)
	require.Equal(t, address.ExclusionModeSubtract, mode)

	mode, err = address.ParseExclusionMode("identical")
	require.NoError(t, err)
	require.Equal(t, address.ExclusionModeIdentical, mode)

	_, err = address.ParseExclusionMode("geometric")
	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Unknown exclusion mode \"geometric\""), err)
}
