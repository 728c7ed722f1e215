package http

import (
	"net/url"
	"strconv"
	"time"

	"github.com/buildbarn/bb-synthgen/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// queryParameters provides typed access to URL query parameters.
// Parameters that are absent yield their default value.
type queryParameters url.Values

func (q queryParameters) string(name string) string {
	return url.Values(q).Get(name)
}

func (q queryParameters) has(name string) bool {
	return url.Values(q).Has(name)
}

func (q queryParameters) bool(name string) (bool, error) {
	s := q.string(name)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, status.Errorf(codes.InvalidArgument, "Invalid value %#v for parameter %#v: Expected a boolean", s, name)
	}
	return v, nil
}

func (q queryParameters) int(name string, defaultValue int) (int, error) {
	s := q.string(name)
	if s == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, status.Errorf(codes.InvalidArgument, "Invalid value %#v for parameter %#v: Expected an integer", s, name)
	}
	return v, nil
}

// optionalUint32 returns nil if the parameter is absent.
func (q queryParameters) optionalUint32(name string) (*uint32, error) {
	s := q.string(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid value %#v for parameter %#v: Expected an unsigned 32-bit integer", s, name)
	}
	v32 := uint32(v)
	return &v32, nil
}

func (q queryParameters) time(name string, defaultValue time.Time) (time.Time, error) {
	s := q.string(name)
	if s == "" {
		return defaultValue, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, util.StatusWrapfWithCode(err, codes.InvalidArgument, "Invalid value %#v for parameter %#v", s, name)
	}
	return t, nil
}
