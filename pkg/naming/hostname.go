package naming

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

var hostnameSuffixes = []string{"-PC", "-MAC", "-OSX", "-LINUX", "-CHROMEBOOK"}

const localhostSuffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// HostnameParameters control the shape of hostnames.
type HostnameParameters struct {
	// Text from which the hostname is derived, such as a user name.
	// Digits are removed.
	Prefix string
	// Suffix to append. If empty, one of -PC, -MAC, -OSX, -LINUX or
	// -CHROMEBOOK is picked.
	Suffix string
	// Don't pick the -MAC and -OSX suffixes.
	ExcludeMACSuffix bool
}

// Hostname creates a hostname for a workstation. The result is in
// lower case.
func (g *Generator) Hostname(parameters HostnameParameters) string {
	prefix := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return -1
		}
		return r
	}, parameters.Prefix)

	hostNumber := fmt.Sprintf("%02d", g.number(1, 9))
	if g.coin() {
		prefix += hostNumber
	}

	suffix := parameters.Suffix
	if suffix == "" {
		suffixes := hostnameSuffixes
		if parameters.ExcludeMACSuffix {
			suffixes = slices.DeleteFunc(slices.Clone(suffixes), func(s string) bool {
				return s == "-MAC" || s == "-OSX"
			})
		}
		suffix = g.choose(suffixes)
	}
	return strings.ToLower(prefix + suffix)
}

// LocalhostParameters control the shape of localhost names.
type LocalhostParameters struct {
	Platform Platform
	// Name to place after the prefix. If empty, a random string of
	// 8 to 11 alphanumeric characters is used.
	Name string
	// Append ".local" to the name.
	SuffixLocal bool
}

// LocalhostNames creates names of machines in the form PREFIX-NAME,
// where the prefix depends on the platform. Names are in upper case,
// except for the ".local" suffix.
func (g *Generator) LocalhostNames(parameters LocalhostParameters, count int) []string {
	var prefixes []string
	switch parameters.Platform {
	case PlatformWindows:
		prefixes = append(slices.Clone(g.tables.WindowsHostnames), g.tables.Brands...)
	case PlatformLinux:
		prefixes = g.tables.NixHostnames
	default:
		prefixes = append(slices.Clone(g.tables.NixHostnames), g.tables.WindowsHostnames...)
	}

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		suffix := parameters.Name
		if suffix == "" {
			suffix = g.randomString(localhostSuffixAlphabet, g.number(8, 11))
		}
		name := strings.ToUpper(g.choose(prefixes) + "-" + suffix)
		if parameters.SuffixLocal {
			name += ".local"
		}
		names = append(names, name)
	}
	return names
}

func (g *Generator) randomString(alphabet string, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[g.generator.IntN(len(alphabet))]
	}
	return string(b)
}
