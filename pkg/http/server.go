package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/buildbarn/bb-synthgen/pkg/program"
	"github.com/buildbarn/bb-synthgen/pkg/util"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Serve requests on a listener until the context is canceled. Upon
// cancelation, in-flight requests are given some time to complete.
func Serve(ctx context.Context, listener net.Listener, handler http.Handler, logger *log.Logger) error {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("Serving HTTP", "address", listener.Addr().String())
		if err := server.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			return util.StatusWrapf(err, "Failed to serve HTTP on %#v", listener.Addr().String())
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return group.Wait()
}

// NewServerAndServe launches an HTTP server as part of a
// program.Group. The server is terminated if the context associated
// with the group is canceled.
func NewServerAndServe(listenAddress string, handler http.Handler, group program.Group, logger *log.Logger) {
	group.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		listener, err := net.Listen("tcp", listenAddress)
		if err != nil {
			return util.StatusWrapf(err, "Failed to listen on %#v", listenAddress)
		}
		return Serve(ctx, listener, handler, logger)
	})
}
