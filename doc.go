// Package frontierpath builds a Zero-suppressed Decision Diagram (ZDD)
// encoding every simple path between two vertices of an undirected graph,
// using the frontier method: edges are processed one at a time and the
// live node set is kept merged down to its distinct frontier-equivalent
// states, so the diagram's size tracks the structure of the path family
// rather than the number of paths it represents.
//
// Subpackages:
//
//	internal/corepath — thread-safe undirected simple-graph catalog
//	pathgraph          — edge-ordered graph and the shared Builder/Parse seam
//	builder            — deterministic graph fixtures (path, cycle, complete, grid)
//	adjtext            — adjacency-list text parser
//	frontier           — frontier-table precomputation
//	zdd                — the frontier-based ZDD construction algorithm itself
//	count              — arbitrary-precision solution counting over a Diagram
//	diagramio          — diagram/summary text writers
//	obslog             — structured logging
//	metrics            — Prometheus instrumentation
//	config             — viper-backed CLI configuration
//	cmd/frontierpath   — the Cobra CLI tying all of the above together
//
// This top-level package holds no code of its own; it exists so `go doc`
// has somewhere to start.
package frontierpath
