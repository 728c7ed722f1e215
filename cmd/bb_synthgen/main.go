package main

import (
	"context"
	"os"

	"github.com/buildbarn/bb-synthgen/pkg/clock"
	"github.com/buildbarn/bb-synthgen/pkg/configuration"
	bb_http "github.com/buildbarn/bb-synthgen/pkg/http"
	"github.com/buildbarn/bb-synthgen/pkg/program"
	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("Usage: bb_synthgen bb_synthgen.jsonnet")
	}
	applicationConfiguration, err := configuration.GetApplicationConfiguration(os.Args[1])
	if err != nil {
		log.Fatal("Failed to read configuration", "path", os.Args[1], "err", err)
	}
	logger, err := configuration.NewLoggerFromConfiguration(applicationConfiguration, "bb_synthgen")
	if err != nil {
		log.Fatal("Failed to create logger", "err", err)
	}
	generator, err := configuration.NewGeneratorFromConfiguration(applicationConfiguration, clock.SystemClock)
	if err != nil {
		logger.Fatal("Failed to create generator", "err", err)
	}

	program.RunMain(logger, func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		var diagnostics bb_http.Diagnostics
		router := mux.NewRouter()
		bb_http.RegisterAPI(router, generator, clock.SystemClock, applicationConfiguration.MaximumCount, logger)
		if listenAddress := applicationConfiguration.DiagnosticsListenAddress; listenAddress == "" {
			diagnostics.Register(router)
		} else {
			// Keep the diagnostics server running until the
			// API server has shut down.
			diagnosticsRouter := mux.NewRouter()
			diagnostics.Register(diagnosticsRouter)
			bb_http.NewServerAndServe(listenAddress, diagnosticsRouter, dependenciesGroup, logger)
		}
		bb_http.NewServerAndServe(
			applicationConfiguration.HTTPListenAddress,
			bb_http.NewMetricsHandler(router, "api"),
			siblingsGroup,
			logger)

		diagnostics.SetReady()
		<-ctx.Done()
		diagnostics.SetNotServing()
		return nil
	})
}
