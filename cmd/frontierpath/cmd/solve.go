package cmd

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontierpath/adjtext"
	"github.com/katalvlaran/frontierpath/count"
	"github.com/katalvlaran/frontierpath/diagramio"
	"github.com/katalvlaran/frontierpath/frontier"
	"github.com/katalvlaran/frontierpath/metrics"
	"github.com/katalvlaran/frontierpath/zdd"
)

var (
	solveInput       string
	solveS           int
	solveT           int
	solveMaxEdges    int
	solveMetricsAddr string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Parse a graph and construct the ZDD of all simple s-t paths",
	RunE:  runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "adjacency-list file (defaults to stdin)")
	solveCmd.Flags().IntVar(&solveS, "s", 0, "source vertex (defaults to 1)")
	solveCmd.Flags().IntVar(&solveT, "t", 0, "target vertex (defaults to n)")
	solveCmd.Flags().IntVar(&solveMaxEdges, "max-edges", 0, "override parser.max_edges (0 keeps the config value)")
	solveCmd.Flags().StringVar(&solveMetricsAddr, "metrics-addr", "", "override metrics.addr and force the metrics listener on")
}

func runSolve(c *cobra.Command, args []string) error {
	r, closeFn, err := openInput(solveInput)
	if err != nil {
		return err
	}
	defer closeFn()

	maxEdges := cfg.Parser.MaxEdges
	if solveMaxEdges > 0 {
		maxEdges = solveMaxEdges
	}

	g, err := adjtext.Parse(r, adjtext.WithMaxEdges(maxEdges))
	if err != nil {
		log.Error("parse failed: %v", err)
		return err
	}

	s, t := solveS, solveT
	if s == 0 {
		s = 1
	}
	if t == 0 {
		t = g.N
	}

	var mtx *metrics.Metrics
	metricsAddr := cfg.Metrics.Addr
	enableMetrics := cfg.Metrics.Enabled
	if solveMetricsAddr != "" {
		metricsAddr = solveMetricsAddr
		enableMetrics = true
	}

	var stopMetrics context.CancelFunc
	if enableMetrics {
		reg := prometheus.NewRegistry()
		mtx = metrics.New(reg)
		var ctx context.Context
		ctx, stopMetrics = context.WithCancel(context.Background())
		go func() {
			if err := metrics.Serve(ctx, metricsAddr, reg); err != nil {
				log.Warn("metrics listener failed: %v", err)
			}
		}()
		defer stopMetrics()
	}

	log.Info("parsed graph: vertices=%d edges=%d s=%d t=%d", g.N, len(g.Edges), s, t)

	ft := frontier.Build(g)
	d, err := zdd.Construct(g, ft, s, t)
	if err != nil {
		log.Error("construction failed: %v", err)
		return err
	}

	sols := count.Solutions(d)
	if mtx != nil {
		solsFloat, _ := new(big.Float).SetInt(sols).Float64()
		mtx.Solutions.Set(solsFloat)
		mtx.Runs.Inc()
		mtx.LevelsProcessed.Add(float64(len(d.Levels)))
		peak := 0
		for i, level := range d.Levels {
			mtx.NodesPerLevel.Observe(float64(len(level)))
			if w := len(ft.At(i)); w > peak {
				peak = w
			}
		}
		mtx.PeakFrontier.Set(float64(peak))
	}

	log.Info("constructed diagram: nodes=%d solutions=%s", d.NodeCount(), sols.String())

	if err := diagramio.WriteDiagram(os.Stdout, d); err != nil {
		return err
	}

	return diagramio.WriteSummary(os.Stderr, g, d, sols)
}

// openInput returns the file at path opened for reading, or os.Stdin if path is empty,
// plus a close function the caller must always defer.
func openInput(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}

	return f, f.Close, nil
}
