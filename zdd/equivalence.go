// Package zdd: equivalence.go implements equivKey and levelIndex.find — merging a
// candidate node into an existing frontier-equivalent node at the same
// level, or admitting it as new. The reference implementation does this by
// scanning N[i+1] linearly and calling IsEquivalent on each candidate; here
// the same "oldest admitted match wins" semantics are preserved exactly
// (so diagram identity, not just solution count, matches), but the scan is
// replaced with a hash-keyed lookup so levels with many nodes don't pay an
// O(|N_i+1|) cost per insertion.
package zdd

import (
	"sort"
	"strconv"
	"strings"
)

// equivKey canonicalizes n's (deg,comp) restricted to frontier into a
// string safe to use as a map key. frontier need not be sorted; equivKey
// sorts its own copy so callers don't have to care about frontier order.
func equivKey(n *Node, frontier []int) string {
	vs := make([]int, len(frontier))
	copy(vs, frontier)
	sort.Ints(vs)

	var sb strings.Builder
	for _, v := range vs {
		sb.WriteString(strconv.Itoa(n.deg[v]))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(n.comp[v]))
		sb.WriteByte(',')
	}

	return sb.String()
}

// levelIndex groups the nodes already admitted at one level by their
// equivKey, preserving first-admitted order within each bucket so Find can
// reproduce the reference implementation's "earliest match wins" tie-break
// even though equal keys should never collide on distinct semantics here.
type levelIndex struct {
	buckets map[string][]*Node
}

func newLevelIndex() *levelIndex {
	return &levelIndex{buckets: make(map[string][]*Node)}
}

// find returns the first previously admitted node at this level equivalent
// to candidate under frontier, or nil if none exists yet.
func (idx *levelIndex) find(candidate *Node, frontier []int) *Node {
	key := equivKey(candidate, frontier)
	bucket := idx.buckets[key]
	if len(bucket) == 0 {
		return nil
	}

	return bucket[0]
}

// insert admits candidate into the index under its current frontier key.
func (idx *levelIndex) insert(candidate *Node, frontier []int) {
	key := equivKey(candidate, frontier)
	idx.buckets[key] = append(idx.buckets[key], candidate)
}
