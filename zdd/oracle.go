// Package zdd: oracle.go implements the per-edge decision rules
// (checkTerminal) and the frontier state transition (updateInfo) that
// together decide, for one parent node and one branch (0 = edge excluded,
// 1 = edge included), whether that branch dead-ends at the 0-terminal,
// completes at the 1-terminal, or survives to be merged/admitted at the
// next level.
package zdd

import "github.com/katalvlaran/frontierpath/pathgraph"

// updateInfo advances n's frontier state to reflect processing edge i
// (1-based) under branch x (0 = excluded, 1 = included). Any endpoint not
// already on the frontier F[i-1] is freshly initialized (deg=0, comp=self)
// before the branch is applied — this is what lets nodes carry only
// frontier-sized state instead of a full per-vertex array.
func updateInfo(n *Node, edge pathgraph.Edge, i int, x int, fBefore []int) {
	beforeSet := toSet(fBefore)
	for _, u := range []int{edge.U, edge.V} {
		if !beforeSet[u] {
			n.deg[u] = 0
			n.comp[u] = u
		}
	}

	if x == 1 {
		n.deg[edge.U]++
		n.deg[edge.V]++
		cMin, cMax := n.comp[edge.U], n.comp[edge.V]
		if cMin > cMax {
			cMin, cMax = cMax, cMin
		}
		for v, c := range n.comp {
			if c == cMax {
				n.comp[v] = cMin
			}
		}
	}
}

// checkTerminal evaluates the oracle for parent node nHat, edge index i
// (1-based), and branch x. It returns (terminal, true) if the branch
// collapses to a terminal node, or (child, false) if it survives, where
// child already carries the post-updateInfo state pruned to F[i] and is left
// for the caller (Construct) to merge via find or admit.
func checkTerminal(b *Builder, nHat *Node, g *pathgraph.Graph, ft [][]int, s, t int, i, x int) (*Node, bool) {
	edge := g.Edges[i-1]

	if x == 1 {
		cu, seenU := nHat.comp[edge.U]
		cv, seenV := nHat.comp[edge.V]
		if seenU && seenV && cu == cv {
			// Including this edge would close a cycle among already-connected
			// vertices — no simple path can pass through a cycle. A vertex
			// not yet present in comp has never been touched by an accepted
			// edge, so it trivially cannot share a component with anything.
			return b.zero, true
		}
	}

	n := b.newNode(nHat)
	updateInfo(n, edge, i, x, ft[i-1])

	isTerm := func(u int) bool { return u == s || u == t }

	for _, u := range []int{edge.U, edge.V} {
		if isTerm(u) && n.deg[u] > 1 {
			return b.zero, true
		}
		if !isTerm(u) && n.deg[u] > 2 {
			return b.zero, true
		}
	}

	frontierNow := toSet(ft[i])
	for _, u := range []int{edge.U, edge.V} {
		if frontierNow[u] {
			continue
		}
		// u has left the frontier: its degree must now be final.
		if isTerm(u) && n.deg[u] != 1 {
			return b.zero, true
		}
		if !isTerm(u) && n.deg[u] != 0 && n.deg[u] != 2 {
			return b.zero, true
		}
	}

	if i == len(g.Edges) {
		return b.one, true
	}

	// Survives: n already carries the post-updateInfo frontier state. Prune
	// any vertex that has left the frontier so the node's maps stay sized to
	// |F[i]|, never accumulating state for vertices equivalence at this or
	// any later level will never again consult.
	prune(n, frontierNow)

	return n, false
}

// prune removes every map entry whose vertex is not in keep.
func prune(n *Node, keep map[int]bool) {
	for v := range n.deg {
		if !keep[v] {
			delete(n.deg, v)
			delete(n.comp, v)
		}
	}
}

// toSet converts a sorted frontier slice into a membership set.
func toSet(xs []int) map[int]bool {
	s := make(map[int]bool, len(xs))
	for _, x := range xs {
		s[x] = true
	}

	return s
}
