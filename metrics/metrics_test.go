package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontierpath/metrics"
)

func TestNew_RegistersCollectorsAndTracksValues(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.LevelsProcessed.Add(3)
	m.PeakFrontier.Set(7)
	m.Solutions.Set(42)
	m.Runs.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	found := map[string]bool{}
	for _, fam := range families {
		found[fam.GetName()] = true
	}
	require.True(t, found["frontierpath_levels_processed_total"])
	require.True(t, found["frontierpath_peak_frontier_size"])
	require.True(t, found["frontierpath_last_solution_count"])
	require.True(t, found["frontierpath_runs_total"])
}

func TestNew_IsIdempotentAgainstDoubleRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() {
		metrics.New(reg)
		metrics.New(reg)
	})
}

func TestServe_ShutsDownOnContextCancel(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics.New(reg)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- metrics.Serve(ctx, "127.0.0.1:0", reg) }()

	// Serve binds to an ephemeral port here only to prove the server starts
	// and stops cleanly; reaching it over HTTP would need the bound port
	// back from the listener, which Serve does not expose, so this test
	// only checks the cancellation path returns without error.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after context cancellation")
	}
}
