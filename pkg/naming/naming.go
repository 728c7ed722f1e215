// Package naming composes synthetic names of companies, hosts and
// servers from word lists.
package naming

import (
	"strings"

	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/tables"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Platform of a host. It determines the word lists from which names
// are composed.
type Platform int

const (
	PlatformMixed Platform = iota
	PlatformWindows
	PlatformLinux
)

// ParsePlatform converts the textual name of a platform to a Platform.
// The empty string yields PlatformMixed.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "", "mixed":
		return PlatformMixed, nil
	case "windows":
		return PlatformWindows, nil
	case "linux":
		return PlatformLinux, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "Unknown platform %#v", s)
	}
}

// Generator of names.
type Generator struct {
	generator random.SingleThreadedGenerator
	tables    *tables.Tables
}

// NewGenerator creates a Generator of names that picks words from the
// provided tables.
func NewGenerator(generator random.SingleThreadedGenerator, t *tables.Tables) *Generator {
	return &Generator{
		generator: generator,
		tables:    t,
	}
}

func (g *Generator) choose(list []string) string {
	return tables.Choose(g.generator, list)
}

// number returns a value in range [low, high].
func (g *Generator) number(low, high int) int {
	return low + g.generator.IntN(high-low+1)
}

func (g *Generator) coin() bool {
	return g.generator.IntN(2) == 1
}

// FQDN is a fully qualified domain name of a fictitious company,
// together with its individual parts.
type FQDN struct {
	Domain    string `json:"domain"`
	SubDomain string `json:"sub_domain"`
	TLD       string `json:"tld"`
	FQDN      string `json:"fqdn"`
}

// FQDN creates a fully qualified domain name for a company, having the
// form location.company.tld. No name is returned if the company name
// is empty.
func (g *Generator) FQDN(companyName string) (FQDN, bool) {
	if companyName == "" {
		return FQDN{}, false
	}
	location := g.choose(g.tables.CorpLocations)
	tld := g.choose(g.tables.TLDs)
	return FQDN{
		Domain:    companyName,
		SubDomain: location,
		TLD:       tld,
		FQDN:      location + "." + companyName + "." + tld,
	}, true
}

// FortuneCookie returns a randomly chosen saying.
func (g *Generator) FortuneCookie() string {
	return g.choose(g.tables.FortuneCookies)
}
