package address

import (
	"github.com/buildbarn/bb-synthgen/pkg/random"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PortScope corresponds to one of the port number ranges of RFC 6335.
type PortScope int

const (
	PortScopeAny PortScope = iota
	// System or well-known ports.
	PortScopeSystem
	// User or registered ports.
	PortScopeUser
	// Dynamic, private or ephemeral ports.
	PortScopeDynamic
)

// ParsePortScope converts the textual name of a port scope to a
// PortScope. The empty string yields PortScopeAny.
func ParsePortScope(s string) (PortScope, error) {
	switch s {
	case "", "any":
		return PortScopeAny, nil
	case "system":
		return PortScopeSystem, nil
	case "user":
		return PortScopeUser, nil
	case "dynamic":
		return PortScopeDynamic, nil
	default:
		return 0, status.Errorf(codes.InvalidArgument, "Unknown port scope %#v", s)
	}
}

// Bounds returns the half-open interval [low, high) of port numbers
// belonging to the scope.
func (s PortScope) Bounds() (uint16, uint16) {
	switch s {
	case PortScopeSystem:
		return 0, 1023
	case PortScopeUser:
		return 1024, 49151
	case PortScopeDynamic:
		return 49152, 65535
	default:
		return 0, 65535
	}
}

// PortNumber generates a port number belonging to a scope.
func PortNumber(generator random.SingleThreadedGenerator, scope PortScope) uint16 {
	low, high := scope.Bounds()
	return low + uint16(generator.IntN(int(high-low)))
}
