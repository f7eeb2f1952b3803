// Package: frontierpath/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices numbered cfg.offset+1 .. cfg.offset+n.
//   - Emits each unordered pair {i,j} with i<j exactly once, in
//     lexicographic order.
//
// Complexity: O(n^2) edges emission; O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/frontierpath/pathgraph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(b *pathgraph.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if n == 1 {
			// A single isolated vertex has no edges; still register it.
			return b.Touch(cfg.offset + 1)
		}

		for i := 1; i <= n; i++ {
			u := cfg.offset + i
			for j := i + 1; j <= n; j++ {
				v := cfg.offset + j
				if _, err := b.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodComplete, u, v, err)
				}
			}
		}

		return nil
	}
}
