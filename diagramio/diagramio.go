// Package diagramio writes a constructed *zdd.Diagram in the reference
// implementation's CRLF text format, and a short human-readable summary to
// accompany it.
package diagramio

import (
	"fmt"
	"io"
	"math/big"

	"github.com/katalvlaran/frontierpath/pathgraph"
	"github.com/katalvlaran/frontierpath/zdd"
)

// WriteDiagram emits d in the format:
//
//	#1\r\n
//	<id>[:<lo-id>,<hi-id>]\r\n
//	...
//	#2\r\n
//	...
//
// one section per level 1..m in increasing order, terminals referenced only
// by their id (0 or 1), never printed as their own section.
func WriteDiagram(w io.Writer, d *zdd.Diagram) error {
	for i, level := range d.Levels {
		if _, err := fmt.Fprintf(w, "#%d\r\n", i+1); err != nil {
			return err
		}
		for _, n := range level {
			if _, err := fmt.Fprintf(w, "%s\r\n", nodeString(n)); err != nil {
				return err
			}
		}
	}

	return nil
}

// nodeString renders one interior node as "<id>:<lo>,<hi>". Every node
// passed here is interior (terminals are never stored in Levels), so the
// bare "<id>" line form of the reference format is never produced.
func nodeString(n *zdd.Node) string {
	return fmt.Sprintf("%d:%d,%d", n.ID, n.Lo().ID, n.Hi().ID)
}

// WriteSummary writes the two-line human-readable narration the reference
// CLI prints to stderr: vertex/edge counts before construction info, and
// node/solution counts after.
func WriteSummary(w io.Writer, g *pathgraph.Graph, d *zdd.Diagram, sols *big.Int) error {
	if _, err := fmt.Fprintf(w, "# of vertices = %d, # of edges = %d\n", g.N, len(g.Edges)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "# of nodes of ZDD = %d, # of solutions = %s\n", d.NodeCount(), sols.String())

	return err
}
