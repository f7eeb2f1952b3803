// Package: frontierpath/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(cons...). Creates a fresh pathgraph.Builder,
//     runs cons in order, freezes and returns the resulting *pathgraph.Graph.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Determinism: same constructor list and parameters ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/frontierpath/pathgraph"
)

// Constructor applies a deterministic mutation to a *pathgraph.Builder.
// Constructors MUST validate parameters early and return sentinel errors
// (no panics), and MUST preserve determinism for the same call order.
type Constructor func(b *pathgraph.Builder, cfg builderConfig) error

// BuildGraph creates a fresh pathgraph.Builder, resolves the builder
// configuration from bopts, and applies all constructors in order. Any
// constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted by design.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*pathgraph.Graph, error) {
	b := pathgraph.NewBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3), vertices numbered 1..n.
// Complexity: O(n) vertices + O(n) edges.
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n ≥ 2), vertices numbered 1..n.
// Complexity: O(n) vertices + O(n-1) edges.
//func Path(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1), vertices 1..n.
// Complexity: O(n) vertices + O(n^2) edges.
//func Complete(n int) Constructor

// Grid builds an R×C 4-neighborhood grid, vertex (r,c) numbered
// r*cols+c+1 in row-major order (r,c zero-based).
// Complexity: O(R*C) vertices + O(R*C) edges.
//func Grid(rows, cols int) Constructor
