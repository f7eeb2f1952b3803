package zdd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frontierpath/frontier"
	"github.com/katalvlaran/frontierpath/pathgraph"
)

// TestUpdateInfo_ExcludeBranchIsIdempotentOnExistingFrontier exercises P6:
// updateInfo(n,i,0) must not touch deg/comp for vertices already present on
// the frontier before this edge; only a vertex newly entering the frontier
// gets initialized.
func TestUpdateInfo_ExcludeBranchIsIdempotentOnExistingFrontier(t *testing.T) {
	n := &Node{
		deg:  map[int]int{2: 1, 3: 0},
		comp: map[int]int{2: 2, 3: 3},
	}
	before := map[int]int{2: 1, 3: 0}
	beforeComp := map[int]int{2: 2, 3: 3}

	edge := pathgraph.Edge{U: 2, V: 4} // 2 already on the frontier, 4 is new
	updateInfo(n, edge, 5, 0, []int{2, 3})

	require.Equal(t, before[2], n.deg[2], "excluded branch must not change an existing vertex's degree")
	require.Equal(t, before[3], n.deg[3])
	require.Equal(t, beforeComp[2], n.comp[2], "excluded branch must not change an existing vertex's component")
	require.Equal(t, beforeComp[3], n.comp[3])

	require.Equal(t, 0, n.deg[4], "newly entering vertex 4 must be freshly initialized")
	require.Equal(t, 4, n.comp[4])
}

// TestUpdateInfo_IncludeBranchOnlyTouchesEdgeEndpoints exercises the x=1
// complement of P6: a vertex not adjacent to the edge under consideration
// must be left untouched even on the include branch.
func TestUpdateInfo_IncludeBranchOnlyTouchesEdgeEndpoints(t *testing.T) {
	n := &Node{
		deg:  map[int]int{1: 1, 2: 0, 5: 1},
		comp: map[int]int{1: 1, 2: 2, 5: 5},
	}

	edge := pathgraph.Edge{U: 1, V: 2}
	updateInfo(n, edge, 3, 1, []int{1, 2, 5})

	require.Equal(t, 1, n.deg[5], "vertex not touched by this edge must be untouched")
	require.Equal(t, 5, n.comp[5])

	require.Equal(t, 2, n.deg[1])
	require.Equal(t, 1, n.deg[2])
	require.Equal(t, n.comp[1], n.comp[2], "including the edge must merge the endpoints' components")
}

// TestAssertInvariants_CatchesOutOfBoundsDegree exercises AssertInvariants
// directly against a hand-built Diagram, so the P5 debug hook is proven to
// actually fail closed rather than only ever passing on well-formed input.
func TestAssertInvariants_CatchesOutOfBoundsDegree(t *testing.T) {
	g := pathgraph.FromAccepted(3, []pathgraph.Edge{{U: 1, V: 2}, {U: 2, V: 3}})
	ft := frontier.Build(g) // F[1] = {2}

	bad := &Node{ID: 2, deg: map[int]int{2: 3}, comp: map[int]int{2: 2}}
	d := &Diagram{Levels: [][]*Node{{}, {bad}}} // Levels[1] nodes carry F[1] state

	err := AssertInvariants(d, ft, 1, 3)
	require.ErrorContains(t, err, "I1 violated")
}
