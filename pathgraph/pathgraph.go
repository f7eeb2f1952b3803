// Package pathgraph defines the edge-ordered undirected graph that the
// frontier construction algorithm consumes: a fixed vertex count n and an
// ordered edge list e_1..e_m. Edge order is not incidental — it is the
// algorithm's fundamental input, since the frontier at level i is defined
// in terms of the first i edges. For that reason Graph keeps its own
// insertion-ordered slice rather than deriving order from a map-backed
// catalog, whose iteration order is undefined.
package pathgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/frontierpath/internal/corepath"
)

// ErrInvalidVertex indicates an edge endpoint falls outside [1, n].
var ErrInvalidVertex = errors.New("pathgraph: vertex out of range")

// Edge is an undirected edge between vertices U and V, 1-indexed, stored
// with U < V by construction (see Builder.AddEdge).
type Edge struct {
	U, V int
}

// Graph is an immutable, edge-ordered undirected simple graph over
// vertices 1..N.
type Graph struct {
	N     int
	Edges []Edge
}

// Builder accumulates edges in first-seen order while rejecting duplicates
// and self-loops via an internal corepath.Graph, then freezes into a Graph.
// This is the seam adjtext.Parse and the builder package fixtures both use:
// neither hand-rolls its own dedup logic.
type Builder struct {
	core  *corepath.Graph
	edges []Edge
	n     int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{core: corepath.New()}
}

// vid renders a 1-indexed vertex integer as the string key corepath wants.
func vid(v int) string {
	return fmt.Sprintf("v%d", v)
}

// Touch records that vertex v participates in the graph, even if it ends up
// with no accepted edges (adjtext.Parse relies on this for isolated vertices
// implied by an empty adjacency line).
func (b *Builder) Touch(v int) error {
	if v < 1 {
		return ErrInvalidVertex
	}
	if v > b.n {
		b.n = v
	}

	return b.core.AddVertex(vid(v))
}

// AddEdge canonicalises (u,v) to u<v and appends it if it is neither a
// self-loop nor a duplicate of an edge already accepted; both are silently
// discarded, matching the parser's documented leniency. Returns true if the
// edge was newly accepted.
func (b *Builder) AddEdge(u, v int) (bool, error) {
	if u < 1 || v < 1 {
		return false, ErrInvalidVertex
	}
	if u == v {
		return false, nil // self-loop: discard, not an error
	}
	if u > v {
		u, v = v, u
	}
	if err := b.Touch(u); err != nil {
		return false, err
	}
	if err := b.Touch(v); err != nil {
		return false, err
	}
	if err := b.core.AddEdge(vid(u), vid(v)); err != nil {
		if errors.Is(err, corepath.ErrMultiEdgeNotAllowed) {
			return false, nil // duplicate: discard, not an error
		}

		return false, err
	}
	b.edges = append(b.edges, Edge{U: u, V: v})

	return true, nil
}

// Build freezes the accumulated edges into an immutable Graph. N is the
// largest vertex index touched, so isolated high-numbered vertices implied
// only by a trailing empty adjacency line are preserved.
func (b *Builder) Build() *Graph {
	out := make([]Edge, len(b.edges))
	copy(out, b.edges)

	return &Graph{N: b.n, Edges: out}
}

// FromAccepted builds a Graph directly from an already-validated, ordered
// edge slice and an explicit vertex count, for callers holding edges already
// known to be canonical and duplicate- and loop-free (hand-built test
// graphs, for instance). The slice is copied as given; nothing is validated.
func FromAccepted(n int, edges []Edge) *Graph {
	out := make([]Edge, len(edges))
	copy(out, edges)

	return &Graph{N: n, Edges: out}
}
