// Package: frontierpath/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per
//     cell). Vertex (r,c), zero-based, is numbered cfg.offset+r*cols+c+1 —
//     row-major, 1-indexed to match pathgraph's vertex numbering.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Adds edges to right (r,c+1) and bottom (r+1,c) neighbors where they
//     exist, right before bottom for a given cell.
//
// Complexity: O(rows*cols) edges emission; O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/frontierpath/pathgraph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *pathgraph.Builder, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		id := func(r, c int) int { return cfg.offset + r*cols + c + 1 }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := id(r, c)
				if c+1 < cols {
					v := id(r, c+1)
					if _, err := b.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, u, v, err)
					}
				}
				if r+1 < rows {
					v := id(r+1, c)
					if _, err := b.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%d,%d): %w", methodGrid, u, v, err)
					}
				}
			}
		}

		return nil
	}
}
