// Package zdd: invariants.go provides AssertInvariants, a debug hook that
// walks a constructed Diagram and checks I1 (frontier degree bounds) and a
// partial form of I3 (component-representative idempotency) against every
// live node. It is not called by Construct itself — it exists for tests and
// callers that want to validate a diagram's internal bookkeeping rather
// than only its solution count.
package zdd

import (
	"fmt"

	"github.com/katalvlaran/frontierpath/frontier"
)

// AssertInvariants reports the first invariant violation found in d, or nil
// if none exists. ft and s,t must be the same values used to build d.
//
// I2 (a retiring vertex's degree must be final) is enforced inline by
// checkTerminal before a node is ever admitted to a level, so a node that
// survives into d already satisfies it; there is nothing left to check
// post-hoc once the retiring vertex's bookkeeping has been pruned away.
func AssertInvariants(d *Diagram, ft *frontier.Table, s, t int) error {
	for i, level := range d.Levels {
		frontierSet := toSet(ft.F[i])
		for _, n := range level {
			if err := assertDegreeBounds(n, frontierSet, s, t, i+1); err != nil {
				return err
			}
			if err := assertComponentIdempotent(n, i+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// assertDegreeBounds checks I1: every frontier vertex's degree is within
// [0,1] if it is a terminal (s or t), else [0,2].
func assertDegreeBounds(n *Node, frontierSet map[int]bool, s, t, level int) error {
	for v, deg := range n.deg {
		if !frontierSet[v] {
			return fmt.Errorf("zdd: node %d at level %d carries stale vertex %d not on the frontier", n.ID, level, v)
		}

		max := 2
		if v == s || v == t {
			max = 1
		}
		if deg < 0 || deg > max {
			return fmt.Errorf("zdd: I1 violated at node %d level %d vertex %d: deg=%d (max %d)", n.ID, level, v, deg, max)
		}
	}

	return nil
}

// assertComponentIdempotent checks that every comp representative still
// tracked on this node's frontier is a fixed point of comp: if the
// representative of v is itself present as a key, it must be its own
// representative. A representative that has already left the frontier
// cannot be checked this way, since its bookkeeping has been pruned.
func assertComponentIdempotent(n *Node, level int) error {
	for v, rep := range n.comp {
		if selfRep, tracked := n.comp[rep]; tracked && selfRep != rep {
			return fmt.Errorf("zdd: I3 violated at node %d level %d: comp[%d]=%d but comp[%d]=%d", n.ID, level, v, rep, rep, selfRep)
		}
	}

	return nil
}
