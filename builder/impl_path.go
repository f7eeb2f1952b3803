// Package: frontierpath/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices numbered cfg.offset+1 .. cfg.offset+n.
//   - Emits edges (offset+i)-(offset+i+1) for i=1..n-1 in increasing order.
//
// Complexity: O(n) vertices + O(n-1) edges; O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/frontierpath/pathgraph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(b *pathgraph.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 1; i < n; i++ {
			u, v := cfg.offset+i, cfg.offset+i+1
			if _, err := b.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
