// Package zdd builds a Zero-suppressed Decision Diagram that compresses the
// family of all simple paths between two vertices s and t of an undirected,
// edge-ordered graph, using the frontier method: edges are processed one at
// a time in the graph's given order, and at each step every live ZDD node is
// expanded along its 0-edge (edge excluded) and 1-edge (edge included),
// pruning branches the moment they can no longer complete to a valid s-t
// path and merging nodes whose behavior is indistinguishable given only the
// frontier — the set of vertices still "in play" at that step.
//
// What
//
//   - Construct runs the level-by-level driver: for each edge i and each
//     live node at level i, checkTerminal decides whether the 0/1-branch
//     collapses to a terminal; if not, updateInfo advances the node's
//     degree/component bookkeeping and the level index's find merges it with an existing
//     frontier-equivalent node at level i+1 or admits it as new.
//   - A Builder owns the monotonic node-id counter and the two terminal
//     singletons for one construction — there is no package-level mutable
//     state, so multiple constructions can run (sequentially) without
//     interfering with each other's node numbering.
//
// Why
//
//   - Naive DFS enumeration of simple paths is exponential in the worst
//     case even when the answer (the path family, expressed as a shared
//     DAG) is compact; frontier-based ZDD construction produces that
//     compact representation directly, in time proportional to the
//     diagram's own size rather than the number of paths it encodes.
//
// Determinism
//
//	Given the same graph, edge order, and (s,t), Construct produces a
//	byte-identical Diagram: node ids are assigned in the fixed order nodes
//	are first admitted to a level, and equivalence merging always prefers
//	the earliest-admitted match (see levelIndex.find).
//
// Complexity
//
//	Bounded by the size of the constructed diagram, not by the number of
//	s-t paths: O(sum_i |N_i| * 2) edge expansions, where |N_i| is the
//	number of live nodes at level i (itself bounded by the number of
//	distinct (deg,comp) frontier states, exponential only in frontier
//	width, not in path count).
//
// Usage
//
//	tbl := frontier.Build(g)
//	d, err := zdd.Construct(g, tbl, s, t)
//
// Errors
//
//   - ErrInvalidTerminal if s or t falls outside [1, g.N], or s == t.
//   - ErrEmptyGraph if g has no edges.
package zdd
