package address

import (
	"regexp"
	"strings"

	"github.com/buildbarn/bb-synthgen/pkg/hexpattern"
	"github.com/buildbarn/bb-synthgen/pkg/random"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const macAddressPattern = "^^:^^:^^:^^:^^:^^"

var ouiPattern = regexp.MustCompile(`^[0-9a-fA-F]{2}([:-][0-9a-fA-F]{2}){0,2}$`)

// MACAddress generates a MAC address in colon-separated notation. If
// an Organizationally Unique Identifier (e.g., "00:1a:2b") is
// provided, the leading octets of the address are set to it.
func MACAddress(generator random.SingleThreadedGenerator, upper bool, oui string) (string, error) {
	mac := hexpattern.Expand(generator, macAddressPattern, upper)
	if oui == "" {
		return mac, nil
	}
	if !ouiPattern.MatchString(oui) {
		return "", status.Errorf(codes.InvalidArgument, "Invalid OUI %#v: Expected up to three hexadecimal octets", oui)
	}
	prefix := strings.ReplaceAll(oui, "-", ":")
	if upper {
		prefix = strings.ToUpper(prefix)
	} else {
		prefix = strings.ToLower(prefix)
	}
	return prefix + mac[len(prefix):], nil
}
