package http

import (
	"net/http"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Diagnostics exposes Prometheus metrics, a health check and a
// readiness check. The readiness check fails until SetReady() is
// called, and after SetNotServing() is called.
type Diagnostics struct {
	ready atomic.Bool
}

// Register the diagnostics endpoints with a router.
func (d *Diagnostics) Register(router *mux.Router) {
	router.HandleFunc("/-/healthy", func(http.ResponseWriter, *http.Request) {}).Methods(http.MethodGet)
	router.HandleFunc("/-/ready", func(w http.ResponseWriter, _ *http.Request) {
		if d.ready.Load() {
			w.WriteHeader(http.StatusOK)
		} else {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		}
	}).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

// SetReady updates the readiness check to report that requests are
// being served.
func (d *Diagnostics) SetReady() {
	d.ready.Store(true)
}

// SetNotServing updates the readiness check to report that requests
// are no longer being served.
func (d *Diagnostics) SetNotServing() {
	d.ready.Store(false)
}
