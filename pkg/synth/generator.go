// Package synth provides a single entry point to all of the synthetic
// values that can be generated.
package synth

import (
	"net/netip"
	"time"

	"github.com/buildbarn/bb-synthgen/pkg/address"
	"github.com/buildbarn/bb-synthgen/pkg/dga"
	"github.com/buildbarn/bb-synthgen/pkg/identifier"
	"github.com/buildbarn/bb-synthgen/pkg/naming"
	"github.com/buildbarn/bb-synthgen/pkg/timezone"
)

// Generator of synthetic values. Implementations are safe to use from
// within multiple goroutines.
type Generator interface {
	// PublicAddress returns a publicly routable address of the given
	// IP version. The class is only used for IPv4 addresses. If
	// fromSubnet is non-empty, the address is drawn from that CIDR
	// range instead.
	PublicAddress(version int, class address.Class, fromSubnet string) (netip.Addr, error)
	PrivateAddress(version int, fromSubnet string) (netip.Addr, error)
	PortNumber(scope address.PortScope) uint16
	MACAddress(upper bool, oui string) (string, error)

	FQDN(companyName string) (naming.FQDN, bool)
	DGADomain(parameters dga.Parameters) string
	Hostname(parameters naming.HostnameParameters) string
	LocalhostNames(parameters naming.LocalhostParameters, count int) ([]string, error)
	ServerName(platform naming.Platform) string
	FortuneCookie() string

	NewUUIDs(count int) ([]string, error)
	LogonIDs(count int) ([]string, error)
	Identifiers(kind identifier.Kind, count int) ([]string, error)

	// GenerateUntil returns a random walk of timestamps from start to
	// end, both inclusive.
	GenerateUntil(start, end time.Time) ([]time.Time, error)
	// GenerateUntilWithLimit returns limit sorted timestamps in range
	// [start, end).
	GenerateUntilWithLimit(start, end time.Time, limit int) ([]time.Time, error)

	TZByISOCode(code string) (string, bool, error)
	TZByCountry(name string) (string, bool, error)
	RandomTimezone() (timezone.Record, error)
}
