// Package count implements the external solution-count collaborator the
// core construction algorithm is deliberately silent on: a bottom-up
// dynamic-programming walk over a *zdd.Diagram's level arrays, where each
// node's solution count is the sum of its two children's counts, and the
// zero/one terminals seed the recursion at 0 and 1 respectively.
package count

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/frontierpath/zdd"
)

// ErrOverflow is returned by SolutionsInt64 when the true solution count
// does not fit in an int64. Solutions itself never overflows: it accumulates
// in math/big, so arbitrarily large path families are always countable.
var ErrOverflow = errors.New("count: solution count overflows int64")

// Solutions returns the exact number of s-t simple paths d encodes, as an
// arbitrary-precision integer. Complexity: O(number of nodes in d).
func Solutions(d *zdd.Diagram) *big.Int {
	sol := make(map[*zdd.Node]*big.Int)
	sol[d.Zero] = big.NewInt(0)
	sol[d.One] = big.NewInt(1)

	for i := len(d.Levels) - 1; i >= 0; i-- {
		for _, n := range d.Levels[i] {
			lo, hi := sol[n.Lo()], sol[n.Hi()]
			sol[n] = new(big.Int).Add(lo, hi)
		}
	}

	root := d.Root()
	if root == nil {
		return big.NewInt(0)
	}

	return sol[root]
}

// SolutionsInt64 is a narrower convenience wrapper around Solutions for
// callers who know the count is expected to be small: it returns
// ErrOverflow rather than silently wrapping or truncating when the exact
// count does not fit in an int64.
func SolutionsInt64(d *zdd.Diagram) (int64, error) {
	n := Solutions(d)
	if !n.IsInt64() {
		return 0, ErrOverflow
	}

	return n.Int64(), nil
}
