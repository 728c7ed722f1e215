package naming

import (
	"fmt"
	"strings"
)

var windowsServerYears = []int{2012, 2014, 2016, 2019}

// ServerName creates a name of a server. The result is in lower case.
//
// Windows servers are named after the release of the operating system
// (e.g., "w2016r2003-srv"). Linux servers are named after the
// distribution and the application they run (e.g., "ubuntu007web-srv").
// Other servers are named after their environment, application and
// type, followed by either a number or a suffix (e.g., "prdsqlvm02").
func (g *Generator) ServerName(platform Platform) string {
	var name string
	switch platform {
	case PlatformWindows:
		name = fmt.Sprintf(
			"W%dR2%03d-SRV",
			windowsServerYears[g.generator.IntN(len(windowsServerYears))],
			g.number(1, 9))
	case PlatformLinux:
		name = fmt.Sprintf(
			"%s%03d%s-SRV",
			g.choose(g.tables.NixHostnames),
			g.number(1, 9),
			g.choose(g.tables.ServerApplicationCodes))
	default:
		serverNumber := fmt.Sprintf("%02d", g.number(1, 4))
		name = g.choose(g.tables.ServerPrefixes) +
			g.choose(g.tables.ServerApplicationCodes) +
			g.choose(g.tables.ServerTypes)
		if g.coin() {
			name += serverNumber
		} else {
			name += g.choose(g.tables.ServerSuffixes)
		}
	}
	return strings.ToLower(name)
}
