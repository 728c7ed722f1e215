package synth

import (
	"net/netip"
	"time"

	"github.com/buildbarn/bb-synthgen/pkg/address"
	"github.com/buildbarn/bb-synthgen/pkg/clock"
	"github.com/buildbarn/bb-synthgen/pkg/dga"
	"github.com/buildbarn/bb-synthgen/pkg/identifier"
	"github.com/buildbarn/bb-synthgen/pkg/naming"
	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/tables"
	"github.com/buildbarn/bb-synthgen/pkg/timeseries"
	"github.com/buildbarn/bb-synthgen/pkg/timezone"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type localGenerator struct {
	generator random.ThreadSafeGenerator

	addresses   address.Generator
	domains     *dga.Generator
	names       *naming.Generator
	identifiers *identifier.Generator
	timezones   *timezone.Resolver
}

// NewLocalGenerator creates a Generator that computes all values
// in-process, drawing randomness from a shared generator.
func NewLocalGenerator(generator random.ThreadSafeGenerator, clock clock.Clock, t *tables.Tables, timezones *timezone.Resolver, exclusionMode address.ExclusionMode) Generator {
	return &localGenerator{
		generator: generator,
		addresses: address.NewPolicyGenerator(
			generator,
			exclusionMode,
			address.DefaultIPv4PolicyTable(),
			address.DefaultIPv6PolicyTable()),
		domains:     dga.NewGenerator(generator, t.AllTLDs),
		names:       naming.NewGenerator(generator, t),
		identifiers: identifier.NewGenerator(generator, clock),
		timezones:   timezones,
	}
}

func (g *localGenerator) PublicAddress(version int, class address.Class, fromSubnet string) (netip.Addr, error) {
	return g.addresses.Generate(address.Parameters{
		Version:    version,
		Class:      class,
		FromSubnet: fromSubnet,
	})
}

func (g *localGenerator) PrivateAddress(version int, fromSubnet string) (netip.Addr, error) {
	return g.addresses.Generate(address.Parameters{
		Version:    version,
		Private:    true,
		FromSubnet: fromSubnet,
	})
}

func (g *localGenerator) PortNumber(scope address.PortScope) uint16 {
	return address.PortNumber(g.generator, scope)
}

func (g *localGenerator) MACAddress(upper bool, oui string) (string, error) {
	return address.MACAddress(g.generator, upper, oui)
}

func (g *localGenerator) FQDN(companyName string) (naming.FQDN, bool) {
	return g.names.FQDN(companyName)
}

func (g *localGenerator) DGADomain(parameters dga.Parameters) string {
	return g.domains.Domain(parameters)
}

func (g *localGenerator) Hostname(parameters naming.HostnameParameters) string {
	return g.names.Hostname(parameters)
}

func (g *localGenerator) LocalhostNames(parameters naming.LocalhostParameters, count int) ([]string, error) {
	if count < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Count %d is negative", count)
	}
	return g.names.LocalhostNames(parameters, count), nil
}

func (g *localGenerator) ServerName(platform naming.Platform) string {
	return g.names.ServerName(platform)
}

func (g *localGenerator) FortuneCookie() string {
	return g.names.FortuneCookie()
}

func (g *localGenerator) NewUUIDs(count int) ([]string, error) {
	return g.identifiers.UUIDs(count)
}

func (g *localGenerator) LogonIDs(count int) ([]string, error) {
	return g.identifiers.LogonIDs(count)
}

func (g *localGenerator) Identifiers(kind identifier.Kind, count int) ([]string, error) {
	return g.identifiers.Identifiers(kind, count)
}

func (g *localGenerator) GenerateUntil(start, end time.Time) ([]time.Time, error) {
	return timeseries.GenerateUntil(g.generator, start, end)
}

func (g *localGenerator) GenerateUntilWithLimit(start, end time.Time, limit int) ([]time.Time, error) {
	return timeseries.GenerateUntilWithLimit(g.generator, start, end, limit)
}

func (g *localGenerator) TZByISOCode(code string) (string, bool, error) {
	return g.timezones.ByISOCode(code)
}

func (g *localGenerator) TZByCountry(name string) (string, bool, error) {
	return g.timezones.ByCountry(name)
}

func (g *localGenerator) RandomTimezone() (timezone.Record, error) {
	return g.timezones.Random(g.generator)
}
