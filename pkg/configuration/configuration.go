// Package configuration contains the configuration schema of the
// synthetic data generation service, and functions for instantiating
// generators from it.
package configuration

import (
	"os"

	"github.com/buildbarn/bb-synthgen/pkg/address"
	"github.com/buildbarn/bb-synthgen/pkg/clock"
	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/synth"
	"github.com/buildbarn/bb-synthgen/pkg/tables"
	"github.com/buildbarn/bb-synthgen/pkg/timezone"
	"github.com/buildbarn/bb-synthgen/pkg/util"
	"github.com/charmbracelet/log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ApplicationConfiguration of bb_synthgen.
type ApplicationConfiguration struct {
	// Address on which the JSON API is served.
	HTTPListenAddress string `json:"httpListenAddress"`
	// Address on which Prometheus metrics and the health check are
	// served. Left empty to serve them on the API address.
	DiagnosticsListenAddress string `json:"diagnosticsListenAddress"`
	// One of "debug", "info", "warn", "error" or "fatal".
	LogLevel string `json:"logLevel"`

	// Source of randomness. Either "fast", "crypto" or "seeded".
	RandomSource string `json:"randomSource"`
	// Seed of the "seeded" source of randomness.
	Seed uint64 `json:"seed"`
	// Either "subtract" or "identical".
	ExclusionMode string `json:"exclusionMode"`

	// Optional path of a YAML file that replaces the embedded word
	// lists.
	TablesPath string `json:"tablesPath"`
	// Optional path of a CSV file that replaces the embedded time
	// zone dataset.
	TimezoneDatasetPath string `json:"timezoneDatasetPath"`

	// Upper bound on the number of values returned by a single
	// request.
	MaximumCount int `json:"maximumCount"`
}

// GetApplicationConfiguration reads a Jsonnet configuration file and
// applies default values.
func GetApplicationConfiguration(path string) (*ApplicationConfiguration, error) {
	var configuration ApplicationConfiguration
	if err := util.UnmarshalConfigurationFromFile(path, &configuration); err != nil {
		return nil, err
	}
	setDefaultApplicationValues(&configuration)
	return &configuration, nil
}

func setDefaultApplicationValues(configuration *ApplicationConfiguration) {
	if configuration.HTTPListenAddress == "" {
		configuration.HTTPListenAddress = ":8080"
	}
	if configuration.LogLevel == "" {
		configuration.LogLevel = "info"
	}
	if configuration.RandomSource == "" {
		configuration.RandomSource = "fast"
	}
	if configuration.MaximumCount == 0 {
		configuration.MaximumCount = 1000
	}
}

// NewLoggerFromConfiguration creates a logger writing to standard
// error with the configured level.
func NewLoggerFromConfiguration(configuration *ApplicationConfiguration, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(configuration.LogLevel)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Invalid log level %#v", configuration.LogLevel)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	}), nil
}

// NewRandomGeneratorFromConfiguration creates the source of randomness
// that is shared by all requests.
func NewRandomGeneratorFromConfiguration(configuration *ApplicationConfiguration) (random.ThreadSafeGenerator, error) {
	switch configuration.RandomSource {
	case "fast":
		return random.FastThreadSafeGenerator, nil
	case "crypto":
		return random.CryptoThreadSafeGenerator, nil
	case "seeded":
		return random.NewThreadSafeGenerator(random.NewSeededGenerator(configuration.Seed)), nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown random source %#v", configuration.RandomSource)
	}
}

// NewGeneratorFromConfiguration creates a Generator of synthetic
// values, instrumented with Prometheus metrics.
func NewGeneratorFromConfiguration(configuration *ApplicationConfiguration, clock clock.Clock) (synth.Generator, error) {
	generator, err := NewRandomGeneratorFromConfiguration(configuration)
	if err != nil {
		return nil, err
	}
	exclusionMode, err := address.ParseExclusionMode(configuration.ExclusionMode)
	if err != nil {
		return nil, err
	}

	t := tables.Default()
	if configuration.TablesPath != "" {
		if t, err = tables.Load(configuration.TablesPath); err != nil {
			return nil, err
		}
	}

	timezones := timezone.DefaultResolver
	if path := configuration.TimezoneDatasetPath; path != "" {
		dataset, err := os.ReadFile(path)
		if err != nil {
			return nil, util.StatusWrapfWithCode(err, codes.NotFound, "Failed to read time zone dataset %#v", path)
		}
		timezones = timezone.NewResolver(dataset)
		if _, err := timezones.Load(); err != nil {
			return nil, util.StatusWrapf(err, "Time zone dataset %#v", path)
		}
	}

	return synth.NewMetricsGenerator(
		synth.NewLocalGenerator(generator, clock, t, timezones, exclusionMode),
		clock,
		"default"), nil
}
