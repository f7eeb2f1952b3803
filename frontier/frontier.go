// Package frontier precomputes the frontier table F[0..m] of a pathgraph.Graph.
// Vertex v belongs to F[i] iff it has already appeared in one of e_1..e_i
// and will appear again in one of e_{i+1}..e_m — it is "in play" at step i,
// neither fully unseen nor fully finished. The reference implementation
// computes this with a per-vertex, per-step suffix scan (O(m) per vertex per
// step); precomputing first/last occurrence indices up front makes the same
// membership test O(1) per vertex per step, at the cost of one O(m) pass.
package frontier

import "github.com/katalvlaran/frontierpath/pathgraph"

// Table holds the frontier at every construction step 0..m.
type Table struct {
	F [][]int // F[i] is the frontier after processing edges e_1..e_i
}

// Build computes the full frontier table for g.
// Complexity: O(m) to find occurrences, O(n*m) worst case to materialize the
// table (each of n vertices is scanned at each of m steps); frontier sizes
// in practice are bounded by the graph's pathwidth, far below n.
func Build(g *pathgraph.Graph) *Table {
	m := len(g.Edges)
	first := make(map[int]int, g.N)
	last := make(map[int]int, g.N)
	for i, e := range g.Edges {
		idx := i + 1 // 1-based, matching e_1..e_m
		if _, ok := first[e.U]; !ok {
			first[e.U] = idx
		}
		if _, ok := first[e.V]; !ok {
			first[e.V] = idx
		}
		last[e.U] = idx
		last[e.V] = idx
	}

	f := make([][]int, m+1)
	f[0] = []int{}
	for i := 1; i <= m; i++ {
		var frontier []int
		for v := 1; v <= g.N; v++ {
			fo, seen := first[v]
			if !seen {
				continue
			}
			if fo <= i && last[v] > i {
				frontier = append(frontier, v)
			}
		}
		f[i] = frontier
	}

	return &Table{F: f}
}

// At returns the frontier after processing the first i edges (0 <= i <= m).
func (t *Table) At(i int) []int {
	return t.F[i]
}

// Len returns the number of frontier snapshots, m+1.
func (t *Table) Len() int {
	return len(t.F)
}
