// Package metrics exposes Prometheus instrumentation for a construction
// run: how many levels have been processed, how many nodes each level
// produced, the peak frontier width seen, and the final solution count.
// Observability here is deliberately decoupled from the construction loop
// itself — nothing in package zdd imports this package; a caller (the CLI)
// updates these gauges/counters from the outside after each stage.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics wraps a prometheus.Registerer with the gauges/counters a
// construction run reports.
type Metrics struct {
	Registry prometheus.Registerer

	LevelsProcessed prometheus.Counter
	NodesPerLevel   prometheus.Histogram
	PeakFrontier    prometheus.Gauge
	Solutions       prometheus.Gauge
	Runs            prometheus.Counter
}

// New registers a fresh set of collectors against reg and returns the
// wrapper. A prometheus.AlreadyRegisteredError is ignored, so calling New
// twice against one registry does not panic; the collectors registered
// first stay the ones reg exports, and the second wrapper's collectors are
// not exported. Any other registration error panics.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Registry: reg,
		LevelsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frontierpath",
			Name:      "levels_processed_total",
			Help:      "Number of edge levels processed across all construction runs.",
		}),
		NodesPerLevel: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "frontierpath",
			Name:      "nodes_per_level",
			Help:      "Distribution of live ZDD node counts observed per level.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		PeakFrontier: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "frontierpath",
			Name:      "peak_frontier_size",
			Help:      "Largest frontier width observed in the most recent construction run.",
		}),
		Solutions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "frontierpath",
			Name:      "last_solution_count",
			Help:      "Solution count of the most recently completed construction run.",
		}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frontierpath",
			Name:      "runs_total",
			Help:      "Number of completed construction runs.",
		}),
	}

	for _, c := range []prometheus.Collector{m.LevelsProcessed, m.NodesPerLevel, m.PeakFrontier, m.Solutions, m.Runs} {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				panic(err)
			}
		}
	}

	return m
}

// Serve starts an HTTP server exposing /metrics on addr and blocks until
// ctx is cancelled, then shuts it down gracefully. Bind failures are
// returned, never fatal to the caller's own process — construction must be
// able to proceed without a metrics endpoint.
func Serve(ctx context.Context, addr string, reg *prometheus.Registry) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}
