// Package zdd: construct.go implements the level-by-level driver described
// in the package doc: for each edge i in order, expand every live node at
// level i along both branches, deciding terminals via checkTerminal and
// merging survivors via the level's equivalence index.
package zdd

import (
	"fmt"

	"github.com/katalvlaran/frontierpath/frontier"
	"github.com/katalvlaran/frontierpath/pathgraph"
)

// Construct builds the ZDD encoding every simple path from s to t in g,
// using the precomputed frontier table ft. s and t are 1-indexed vertex
// numbers; s must not equal t.
//
// Construction is strictly sequential: levels are built in increasing edge
// order, and a level is never revisited once the next level has started, so
// Construct performs no cross-level deduplication and does not reclaim
// memory for finished levels mid-construction — callers needing that must
// post-process the returned Diagram themselves.
func Construct(g *pathgraph.Graph, ft *frontier.Table, s, t int) (*Diagram, error) {
	if len(g.Edges) == 0 {
		return nil, ErrEmptyGraph
	}
	if s < 1 || s > g.N || t < 1 || t > g.N || s == t {
		return nil, fmt.Errorf("%w: s=%d t=%d n=%d", ErrInvalidTerminal, s, t, g.N)
	}

	b := NewBuilder()
	m := len(g.Edges)

	levels := make([][]*Node, m+1) // levels[i] = nodes at level i+1, i in [0,m-1]; levels[m] unused (dummy, kept for 1:1 index symmetry with m+1)
	levels[0] = []*Node{b.root()}

	for i := 1; i <= m; i++ {
		var nextIdx *levelIndex
		if i < m {
			nextIdx = newLevelIndex()
		}

		for _, nHat := range levels[i-1] {
			var children [2]*Node
			for x := 0; x <= 1; x++ {
				child, terminal := checkTerminal(b, nHat, g, ft.F, s, t, i, x)
				if terminal {
					children[x] = child
					continue
				}

				if existing := nextIdx.find(child, ft.F[i]); existing != nil {
					children[x] = existing
				} else {
					b.admit(child)
					nextIdx.insert(child, ft.F[i])
					levels[i] = append(levels[i], child)
					children[x] = child
				}
			}
			nHat.lo = children[0]
			nHat.hi = children[1]
		}
	}

	return &Diagram{Levels: levels[:m], Zero: b.zero, One: b.one}, nil
}
