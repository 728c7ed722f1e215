package synth

import (
	"net/netip"
	"time"

	"github.com/buildbarn/bb-synthgen/pkg/address"
	"github.com/buildbarn/bb-synthgen/pkg/clock"
	"github.com/buildbarn/bb-synthgen/pkg/dga"
	"github.com/buildbarn/bb-synthgen/pkg/identifier"
	"github.com/buildbarn/bb-synthgen/pkg/naming"
	"github.com/buildbarn/bb-synthgen/pkg/timezone"
	"github.com/buildbarn/bb-synthgen/pkg/util"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	generatorOperationsStartedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "synthgen",
			Name:      "generator_operations_started_total",
			Help:      "Total number of operations started on generators.",
		},
		[]string{"name", "operation"})
	generatorOperationsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "synthgen",
			Name:      "generator_operations_duration_seconds",
			Help:      "Amount of time spent per operation on generators, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-6, 6, 2),
		},
		[]string{"name", "operation", "grpc_code"})
)

func init() {
	prometheus.MustRegister(generatorOperationsStartedTotal)
	prometheus.MustRegister(generatorOperationsDurationSeconds)
}

type operationMetrics struct {
	clock           clock.Clock
	startedTotal    prometheus.Counter
	durationSeconds prometheus.ObserverVec
}

func newOperationMetrics(clock clock.Clock, name, operation string) operationMetrics {
	return operationMetrics{
		clock:           clock,
		startedTotal:    generatorOperationsStartedTotal.WithLabelValues(name, operation),
		durationSeconds: generatorOperationsDurationSeconds.MustCurryWith(map[string]string{"name": name, "operation": operation}),
	}
}

func (m *operationMetrics) start() time.Time {
	m.startedTotal.Inc()
	return m.clock.Now()
}

func (m *operationMetrics) finish(timeStart time.Time, err error) {
	m.durationSeconds.WithLabelValues(status.Code(err).String()).Observe(m.clock.Now().Sub(timeStart).Seconds())
}

type metricsGenerator struct {
	base Generator

	publicAddress          operationMetrics
	privateAddress         operationMetrics
	portNumber             operationMetrics
	macAddress             operationMetrics
	fqdn                   operationMetrics
	dgaDomain              operationMetrics
	hostname               operationMetrics
	localhostNames         operationMetrics
	serverName             operationMetrics
	fortuneCookie          operationMetrics
	newUUIDs               operationMetrics
	logonIDs               operationMetrics
	identifiers            operationMetrics
	generateUntil          operationMetrics
	generateUntilWithLimit operationMetrics
	tzByISOCode            operationMetrics
	tzByCountry            operationMetrics
	randomTimezone         operationMetrics
}

// NewMetricsGenerator creates an adapter for Generator that adds basic
// instrumentation in the form of Prometheus metrics.
func NewMetricsGenerator(base Generator, clock clock.Clock, name string) Generator {
	return &metricsGenerator{
		base:                   base,
		publicAddress:          newOperationMetrics(clock, name, "PublicAddress"),
		privateAddress:         newOperationMetrics(clock, name, "PrivateAddress"),
		portNumber:             newOperationMetrics(clock, name, "PortNumber"),
		macAddress:             newOperationMetrics(clock, name, "MACAddress"),
		fqdn:                   newOperationMetrics(clock, name, "FQDN"),
		dgaDomain:              newOperationMetrics(clock, name, "DGADomain"),
		hostname:               newOperationMetrics(clock, name, "Hostname"),
		localhostNames:         newOperationMetrics(clock, name, "LocalhostNames"),
		serverName:             newOperationMetrics(clock, name, "ServerName"),
		fortuneCookie:          newOperationMetrics(clock, name, "FortuneCookie"),
		newUUIDs:               newOperationMetrics(clock, name, "NewUUIDs"),
		logonIDs:               newOperationMetrics(clock, name, "LogonIDs"),
		identifiers:            newOperationMetrics(clock, name, "Identifiers"),
		generateUntil:          newOperationMetrics(clock, name, "GenerateUntil"),
		generateUntilWithLimit: newOperationMetrics(clock, name, "GenerateUntilWithLimit"),
		tzByISOCode:            newOperationMetrics(clock, name, "TZByISOCode"),
		tzByCountry:            newOperationMetrics(clock, name, "TZByCountry"),
		randomTimezone:         newOperationMetrics(clock, name, "RandomTimezone"),
	}
}

func (g *metricsGenerator) PublicAddress(version int, class address.Class, fromSubnet string) (netip.Addr, error) {
	timeStart := g.publicAddress.start()
	addr, err := g.base.PublicAddress(version, class, fromSubnet)
	g.publicAddress.finish(timeStart, err)
	return addr, err
}

func (g *metricsGenerator) PrivateAddress(version int, fromSubnet string) (netip.Addr, error) {
	timeStart := g.privateAddress.start()
	addr, err := g.base.PrivateAddress(version, fromSubnet)
	g.privateAddress.finish(timeStart, err)
	return addr, err
}

func (g *metricsGenerator) PortNumber(scope address.PortScope) uint16 {
	timeStart := g.portNumber.start()
	port := g.base.PortNumber(scope)
	g.portNumber.finish(timeStart, nil)
	return port
}

func (g *metricsGenerator) MACAddress(upper bool, oui string) (string, error) {
	timeStart := g.macAddress.start()
	mac, err := g.base.MACAddress(upper, oui)
	g.macAddress.finish(timeStart, err)
	return mac, err
}

func (g *metricsGenerator) FQDN(companyName string) (naming.FQDN, bool) {
	timeStart := g.fqdn.start()
	fqdn, ok := g.base.FQDN(companyName)
	g.fqdn.finish(timeStart, nil)
	return fqdn, ok
}

func (g *metricsGenerator) DGADomain(parameters dga.Parameters) string {
	timeStart := g.dgaDomain.start()
	domain := g.base.DGADomain(parameters)
	g.dgaDomain.finish(timeStart, nil)
	return domain
}

func (g *metricsGenerator) Hostname(parameters naming.HostnameParameters) string {
	timeStart := g.hostname.start()
	hostname := g.base.Hostname(parameters)
	g.hostname.finish(timeStart, nil)
	return hostname
}

func (g *metricsGenerator) LocalhostNames(parameters naming.LocalhostParameters, count int) ([]string, error) {
	timeStart := g.localhostNames.start()
	names, err := g.base.LocalhostNames(parameters, count)
	g.localhostNames.finish(timeStart, err)
	return names, err
}

func (g *metricsGenerator) ServerName(platform naming.Platform) string {
	timeStart := g.serverName.start()
	name := g.base.ServerName(platform)
	g.serverName.finish(timeStart, nil)
	return name
}

func (g *metricsGenerator) FortuneCookie() string {
	timeStart := g.fortuneCookie.start()
	cookie := g.base.FortuneCookie()
	g.fortuneCookie.finish(timeStart, nil)
	return cookie
}

func (g *metricsGenerator) NewUUIDs(count int) ([]string, error) {
	timeStart := g.newUUIDs.start()
	ids, err := g.base.NewUUIDs(count)
	g.newUUIDs.finish(timeStart, err)
	return ids, err
}

func (g *metricsGenerator) LogonIDs(count int) ([]string, error) {
	timeStart := g.logonIDs.start()
	ids, err := g.base.LogonIDs(count)
	g.logonIDs.finish(timeStart, err)
	return ids, err
}

func (g *metricsGenerator) Identifiers(kind identifier.Kind, count int) ([]string, error) {
	timeStart := g.identifiers.start()
	ids, err := g.base.Identifiers(kind, count)
	g.identifiers.finish(timeStart, err)
	return ids, err
}

func (g *metricsGenerator) GenerateUntil(start, end time.Time) ([]time.Time, error) {
	timeStart := g.generateUntil.start()
	series, err := g.base.GenerateUntil(start, end)
	g.generateUntil.finish(timeStart, err)
	return series, err
}

func (g *metricsGenerator) GenerateUntilWithLimit(start, end time.Time, limit int) ([]time.Time, error) {
	timeStart := g.generateUntilWithLimit.start()
	series, err := g.base.GenerateUntilWithLimit(start, end, limit)
	g.generateUntilWithLimit.finish(timeStart, err)
	return series, err
}

func (g *metricsGenerator) TZByISOCode(code string) (string, bool, error) {
	timeStart := g.tzByISOCode.start()
	zones, ok, err := g.base.TZByISOCode(code)
	g.tzByISOCode.finish(timeStart, err)
	return zones, ok, err
}

func (g *metricsGenerator) TZByCountry(name string) (string, bool, error) {
	timeStart := g.tzByCountry.start()
	zones, ok, err := g.base.TZByCountry(name)
	g.tzByCountry.finish(timeStart, err)
	return zones, ok, err
}

func (g *metricsGenerator) RandomTimezone() (timezone.Record, error) {
	timeStart := g.randomTimezone.start()
	record, err := g.base.RandomTimezone()
	g.randomTimezone.finish(timeStart, err)
	return record, err
}
