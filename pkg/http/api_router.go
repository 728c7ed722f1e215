package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/buildbarn/bb-synthgen/pkg/address"
	"github.com/buildbarn/bb-synthgen/pkg/clock"
	"github.com/buildbarn/bb-synthgen/pkg/dga"
	"github.com/buildbarn/bb-synthgen/pkg/identifier"
	"github.com/buildbarn/bb-synthgen/pkg/naming"
	"github.com/buildbarn/bb-synthgen/pkg/synth"
	"github.com/buildbarn/bb-synthgen/pkg/timeseries"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Window of time series requests that don't specify a start time.
const defaultTimeSeriesDuration = 24 * time.Hour

type apiHandlerFunc func(r *http.Request, q queryParameters) (any, error)

type apiRouter struct {
	generator    synth.Generator
	clock        clock.Clock
	maximumCount int
	logger       *log.Logger
}

// RegisterAPI registers read-only endpoints under /api/v1 that return
// synthetic values as JSON. Batches of values are limited to
// maximumCount elements.
func RegisterAPI(router *mux.Router, generator synth.Generator, clock clock.Clock, maximumCount int, logger *log.Logger) {
	ar := &apiRouter{
		generator:    generator,
		clock:        clock,
		maximumCount: maximumCount,
		logger:       logger,
	}
	s := router.PathPrefix("/api/v1").Methods(http.MethodGet).Subrouter()
	s.Handle("/addresses/public", ar.handler(ar.publicAddress))
	s.Handle("/addresses/private", ar.handler(ar.privateAddress))
	s.Handle("/ports", ar.handler(ar.portNumber))
	s.Handle("/mac-addresses", ar.handler(ar.macAddress))
	s.Handle("/fqdns", ar.handler(ar.fqdn))
	s.Handle("/dga-domains", ar.handler(ar.dgaDomain))
	s.Handle("/hostnames", ar.handler(ar.hostname))
	s.Handle("/localhost-names", ar.handler(ar.localhostNames))
	s.Handle("/server-names", ar.handler(ar.serverName))
	s.Handle("/fortune-cookies", ar.handler(ar.fortuneCookie))
	s.Handle("/identifiers/{kind}", ar.handler(ar.identifiers))
	s.Handle("/timeseries", ar.handler(ar.timeSeries))
	s.Handle("/timezones/random", ar.handler(ar.randomTimezone))
	s.Handle("/timezones/{query}", ar.handler(ar.timezones))
}

func (ar *apiRouter) handler(f apiHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, err := f(r, queryParameters(r.URL.Query()))
		if err != nil {
			writeStatus(w, ar.logger, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			ar.logger.Warn("Failed to write response", "path", r.URL.Path, "err", err)
		}
	})
}

func (ar *apiRouter) count(q queryParameters, name string) (int, error) {
	count, err := q.int(name, 1)
	if err != nil {
		return 0, err
	}
	if count > ar.maximumCount {
		return 0, status.Errorf(codes.InvalidArgument, "Count %d exceeds the maximum of %d", count, ar.maximumCount)
	}
	return count, nil
}

type addressResponse struct {
	Address string `json:"address"`
}

func (ar *apiRouter) publicAddress(r *http.Request, q queryParameters) (any, error) {
	version, err := q.int("version", 4)
	if err != nil {
		return nil, err
	}
	addr, err := ar.generator.PublicAddress(version, address.ParseClass(q.string("class")), q.string("subnet"))
	if err != nil {
		return nil, err
	}
	return addressResponse{Address: addr.String()}, nil
}

func (ar *apiRouter) privateAddress(r *http.Request, q queryParameters) (any, error) {
	version, err := q.int("version", 4)
	if err != nil {
		return nil, err
	}
	addr, err := ar.generator.PrivateAddress(version, q.string("subnet"))
	if err != nil {
		return nil, err
	}
	return addressResponse{Address: addr.String()}, nil
}

func (ar *apiRouter) portNumber(r *http.Request, q queryParameters) (any, error) {
	scope, err := address.ParsePortScope(q.string("scope"))
	if err != nil {
		return nil, err
	}
	return struct {
		Port uint16 `json:"port"`
	}{Port: ar.generator.PortNumber(scope)}, nil
}

func (ar *apiRouter) macAddress(r *http.Request, q queryParameters) (any, error) {
	upper, err := q.bool("upper")
	if err != nil {
		return nil, err
	}
	mac, err := ar.generator.MACAddress(upper, q.string("oui"))
	if err != nil {
		return nil, err
	}
	return struct {
		MACAddress string `json:"mac_address"`
	}{MACAddress: mac}, nil
}

func (ar *apiRouter) fqdn(r *http.Request, q queryParameters) (any, error) {
	fqdn, ok := ar.generator.FQDN(q.string("company"))
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "Parameter \"company\" is required")
	}
	return fqdn, nil
}

func (ar *apiRouter) dgaDomain(r *http.Request, q queryParameters) (any, error) {
	var parameters dga.Parameters
	var err error
	for name, field := range map[string]**uint32{
		"year":   &parameters.Year,
		"month":  &parameters.Month,
		"day":    &parameters.Day,
		"length": &parameters.Length,
	} {
		if *field, err = q.optionalUint32(name); err != nil {
			return nil, err
		}
	}
	if parameters.Length != nil && *parameters.Length > dga.MaximumLabelLength {
		return nil, status.Errorf(codes.InvalidArgument, "Length %d exceeds the maximum label length of %d", *parameters.Length, dga.MaximumLabelLength)
	}
	parameters.TLD = q.string("tld")
	return struct {
		Domain string `json:"domain"`
	}{Domain: ar.generator.DGADomain(parameters)}, nil
}

func (ar *apiRouter) hostname(r *http.Request, q queryParameters) (any, error) {
	excludeMACSuffix, err := q.bool("exclude_mac_suffix")
	if err != nil {
		return nil, err
	}
	return struct {
		Hostname string `json:"hostname"`
	}{
		Hostname: ar.generator.Hostname(naming.HostnameParameters{
			Prefix:           q.string("prefix"),
			Suffix:           q.string("suffix"),
			ExcludeMACSuffix: excludeMACSuffix,
		}),
	}, nil
}

func (ar *apiRouter) localhostNames(r *http.Request, q queryParameters) (any, error) {
	platform, err := naming.ParsePlatform(q.string("platform"))
	if err != nil {
		return nil, err
	}
	suffixLocal, err := q.bool("suffix_local")
	if err != nil {
		return nil, err
	}
	count, err := ar.count(q, "count")
	if err != nil {
		return nil, err
	}
	names, err := ar.generator.LocalhostNames(naming.LocalhostParameters{
		Platform:    platform,
		Name:        q.string("name"),
		SuffixLocal: suffixLocal,
	}, count)
	if err != nil {
		return nil, err
	}
	return struct {
		Names []string `json:"names"`
	}{Names: names}, nil
}

func (ar *apiRouter) serverName(r *http.Request, q queryParameters) (any, error) {
	platform, err := naming.ParsePlatform(q.string("platform"))
	if err != nil {
		return nil, err
	}
	return struct {
		ServerName string `json:"server_name"`
	}{ServerName: ar.generator.ServerName(platform)}, nil
}

func (ar *apiRouter) fortuneCookie(r *http.Request, q queryParameters) (any, error) {
	return struct {
		FortuneCookie string `json:"fortune_cookie"`
	}{FortuneCookie: ar.generator.FortuneCookie()}, nil
}

func (ar *apiRouter) identifiers(r *http.Request, q queryParameters) (any, error) {
	kind, err := identifier.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		return nil, err
	}
	count, err := ar.count(q, "count")
	if err != nil {
		return nil, err
	}
	var ids []string
	switch kind {
	case identifier.KindUUID:
		ids, err = ar.generator.NewUUIDs(count)
	case identifier.KindLogonID:
		ids, err = ar.generator.LogonIDs(count)
	default:
		ids, err = ar.generator.Identifiers(kind, count)
	}
	if err != nil {
		return nil, err
	}
	return struct {
		Kind        string   `json:"kind"`
		Identifiers []string `json:"identifiers"`
	}{Kind: kind.String(), Identifiers: ids}, nil
}

func (ar *apiRouter) timeSeries(r *http.Request, q queryParameters) (any, error) {
	end, err := q.time("end", ar.clock.Now())
	if err != nil {
		return nil, err
	}
	start, err := q.time("start", end.Add(-defaultTimeSeriesDuration))
	if err != nil {
		return nil, err
	}
	var timestamps []time.Time
	if q.has("limit") {
		limit, err := ar.count(q, "limit")
		if err != nil {
			return nil, err
		}
		timestamps, err = ar.generator.GenerateUntilWithLimit(start, end, limit)
		if err != nil {
			return nil, err
		}
	} else {
		// Random walks yield one timestamp per MeanStep on average.
		if expected := end.Sub(start) / timeseries.MeanStep; expected > time.Duration(ar.maximumCount) {
			return nil, status.Errorf(codes.InvalidArgument, "Window of %s yields about %d timestamps, which exceeds the maximum of %d", end.Sub(start), int64(expected), ar.maximumCount)
		}
		timestamps, err = ar.generator.GenerateUntil(start, end)
		if err != nil {
			return nil, err
		}
	}
	return struct {
		Timestamps []time.Time `json:"timestamps"`
	}{Timestamps: timestamps}, nil
}

func (ar *apiRouter) randomTimezone(r *http.Request, q queryParameters) (any, error) {
	return ar.generator.RandomTimezone()
}

func (ar *apiRouter) timezones(r *http.Request, q queryParameters) (any, error) {
	query := mux.Vars(r)["query"]
	var zones string
	var ok bool
	var err error
	if len(query) == 2 || len(query) == 3 {
		zones, ok, err = ar.generator.TZByISOCode(query)
	} else {
		zones, ok, err = ar.generator.TZByCountry(query)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, status.Errorf(codes.NotFound, "No country matches %#v", query)
	}
	return struct {
		Query     string `json:"query"`
		Timezones string `json:"timezones"`
	}{Query: query, Timezones: zones}, nil
}
