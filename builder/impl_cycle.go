// Package: frontierpath/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices numbered cfg.offset+1 .. cfg.offset+n.
//   - Emits edges in stable order i -> (i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges; O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/frontierpath/pathgraph"
)

// File-local constants (no magic numbers; stable method tags for context).
const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	// Return a closure capturing n; BuildGraph will pass (b,cfg).
	return func(b *pathgraph.Builder, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if n < minCycleNodes {
			// Provide deterministic context while preserving sentinel semantics.
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		// Emit edges in ascending i; for i==n-1, connect back to 0 to close the ring.
		for i := 0; i < n; i++ {
			u := cfg.offset + 1 + i
			v := cfg.offset + 1 + (i+1)%n
			if _, err := b.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodCycle, u, v, err)
			}
		}

		// Success: cycle fully constructed.
		return nil
	}
}
