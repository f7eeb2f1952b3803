package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontierpath/builder"
	"github.com/katalvlaran/frontierpath/pathgraph"
)

var fixtureOut string

var fixtureCmd = &cobra.Command{
	Use:       "fixture <path|cycle|complete|grid> <args...>",
	Short:     "Emit a builder-generated graph as adjacency-list text",
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{"path", "cycle", "complete", "grid"},
	RunE:      runFixture,
}

func init() {
	rootCmd.AddCommand(fixtureCmd)
	fixtureCmd.Flags().StringVarP(&fixtureOut, "output", "o", "", "write to this file instead of stdout")
}

func runFixture(c *cobra.Command, args []string) error {
	topo, rest := args[0], args[1:]

	g, err := buildFixture(topo, rest)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if fixtureOut != "" {
		f, err := os.Create(fixtureOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", fixtureOut, err)
		}
		defer f.Close()
		w = f
	}

	return writeAdjacency(w, g)
}

func buildFixture(topo string, args []string) (*pathgraph.Graph, error) {
	switch topo {
	case "path":
		n, err := parseOneInt(args, "path")
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, builder.Path(n))
	case "cycle":
		n, err := parseOneInt(args, "cycle")
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, builder.Cycle(n))
	case "complete":
		n, err := parseOneInt(args, "complete")
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, builder.Complete(n))
	case "grid":
		rows, cols, err := parseTwoInts(args, "grid")
		if err != nil {
			return nil, err
		}
		return builder.BuildGraph(nil, builder.Grid(rows, cols))
	default:
		return nil, fmt.Errorf("fixture: unknown topology %q (valid: path, cycle, complete, grid)", topo)
	}
}

func parseOneInt(args []string, topo string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("fixture %s: expected exactly one integer argument, got %d", topo, len(args))
	}
	var n int
	if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil {
		return 0, fmt.Errorf("fixture %s: invalid integer %q", topo, args[0])
	}
	return n, nil
}

func parseTwoInts(args []string, topo string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("fixture %s: expected two integer arguments (rows cols), got %d", topo, len(args))
	}
	var rows, cols int
	if _, err := fmt.Sscanf(args[0], "%d", &rows); err != nil {
		return 0, 0, fmt.Errorf("fixture %s: invalid rows %q", topo, args[0])
	}
	if _, err := fmt.Sscanf(args[1], "%d", &cols); err != nil {
		return 0, 0, fmt.Errorf("fixture %s: invalid cols %q", topo, args[1])
	}
	return rows, cols, nil
}

// writeAdjacency writes g in the adjtext adjacency-list format: line v
// (1-indexed) lists the neighbours of vertex v, whitespace separated.
func writeAdjacency(w io.Writer, g *pathgraph.Graph) error {
	adj := make([][]int, g.N+1)
	for _, e := range g.Edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	for v := 1; v <= g.N; v++ {
		line := ""
		for i, nbr := range adj[v] {
			if i > 0 {
				line += " "
			}
			line += fmt.Sprintf("%d", nbr)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}
