// Package tables provides the word lists from which synthetic domain
// names, hostnames and server names are composed.
package tables

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"sync"

	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var embeddedTables []byte

// Tables of words. Every list is guaranteed to be non-empty, which
// allows callers to pick elements without checking for their presence.
type Tables struct {
	// Top-level domains used for FQDNs of fictitious companies.
	TLDs []string `yaml:"tlds"`
	// All top-level domains, used for DGA domains.
	AllTLDs []string `yaml:"all_tlds"`
	// Subdomains denoting a location within a company.
	CorpLocations          []string `yaml:"corp_locations"`
	WindowsHostnames       []string `yaml:"windows_hostnames"`
	NixHostnames           []string `yaml:"nix_hostnames"`
	Brands                 []string `yaml:"brands"`
	ServerPrefixes         []string `yaml:"server_prefixes"`
	ServerSuffixes         []string `yaml:"server_suffixes"`
	ServerApplicationCodes []string `yaml:"server_application_codes"`
	ServerTypes            []string `yaml:"server_types"`
	FortuneCookies         []string `yaml:"fortune_cookies"`
}

// Parse tables stored in YAML format. Unknown keys and empty lists are
// rejected.
func Parse(r io.Reader) (*Tables, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var t Tables
	if err := decoder.Decode(&t); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Failed to parse tables: %s", err)
	}
	for name, list := range map[string][]string{
		"tlds":                     t.TLDs,
		"all_tlds":                 t.AllTLDs,
		"corp_locations":           t.CorpLocations,
		"windows_hostnames":        t.WindowsHostnames,
		"nix_hostnames":            t.NixHostnames,
		"brands":                   t.Brands,
		"server_prefixes":          t.ServerPrefixes,
		"server_suffixes":          t.ServerSuffixes,
		"server_application_codes": t.ServerApplicationCodes,
		"server_types":             t.ServerTypes,
		"fortune_cookies":          t.FortuneCookies,
	} {
		if len(list) == 0 {
			return nil, status.Errorf(codes.InvalidArgument, "Table %#v is empty", name)
		}
	}
	return &t, nil
}

// Load tables from a YAML file on disk. This permits overriding the
// tables that are embedded into the binary.
func Load(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.StatusWrapfWithCode(err, codes.NotFound, "Failed to open tables file %#v", path)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, util.StatusWrapf(err, "Tables file %#v", path)
	}
	return t, nil
}

var (
	defaultTablesOnce sync.Once
	defaultTables     *Tables
)

// Default returns the tables that are embedded into the binary. They
// are parsed upon first use and shared afterwards. Callers must not
// modify them.
func Default() *Tables {
	defaultTablesOnce.Do(func() {
		t, err := Parse(bytes.NewReader(embeddedTables))
		if err != nil {
			panic(util.StatusWrapWithCode(err, codes.Internal, "Embedded tables"))
		}
		defaultTables = t
	})
	return defaultTables
}

// Choose an element from a list uniformly at random.
func Choose(generator random.SingleThreadedGenerator, list []string) string {
	return list[generator.IntN(len(list))]
}
