// Package zdd: types.go declares Node, Diagram, and the sentinel errors
// Construct can return.
package zdd

import "errors"

// Sentinel errors for zdd construction.
var (
	// ErrInvalidTerminal indicates s or t is out of range or s == t.
	ErrInvalidTerminal = errors.New("zdd: invalid s/t terminal vertex")

	// ErrEmptyGraph indicates the graph has no edges to process.
	ErrEmptyGraph = errors.New("zdd: graph has no edges")
)

// Node is one ZDD node. Per spec, a node stores only the degree/component
// bookkeeping for vertices currently on the frontier — deg and comp are
// maps keyed by vertex, holding exactly the frontier-sized state the
// algorithm needs, not a full length-(n+1) array per node.
type Node struct {
	// ID is this node's identity: 0 for the zero terminal, 1 for the one
	// terminal, 2.. for every other node in first-admitted order.
	ID int

	deg  map[int]int // vertex -> current degree within accepted edges so far
	comp map[int]int // vertex -> canonical component representative

	lo, hi *Node // 0-edge and 1-edge children; nil on terminals
}

// IsTerminal reports whether n is one of the two terminal nodes.
func (n *Node) IsTerminal() bool {
	return n.ID == 0 || n.ID == 1
}

// Lo returns the 0-edge child (edge excluded). Nil on a terminal node.
func (n *Node) Lo() *Node { return n.lo }

// Hi returns the 1-edge child (edge included). Nil on a terminal node.
func (n *Node) Hi() *Node { return n.hi }

// Diagram is the result of Construct: the level arrays N[1..m], plus the
// two shared terminal nodes. Levels[i] holds the nodes at level i+1, which
// have decided edges 1..i and carry F[i] state (i.e. Levels[0] is N[1], the
// root alone, at which edge 1 is decided); this
// mirrors the reference implementation's 1-based N array with the index
// shifted down by one for idiomatic Go slicing.
type Diagram struct {
	Levels []([]*Node) // Levels[i] = nodes at level i+1, for i in [0, m-1]
	Zero   *Node       // the 0-terminal, ID 0
	One    *Node       // the 1-terminal, ID 1
}

// Root returns the single root node, Levels[0][0], or nil if Construct was
// never run successfully.
func (d *Diagram) Root() *Node {
	if len(d.Levels) == 0 || len(d.Levels[0]) == 0 {
		return nil
	}

	return d.Levels[0][0]
}

// NodeCount returns the total number of nodes in the diagram, including
// both terminals.
func (d *Diagram) NodeCount() int {
	n := 2
	for _, level := range d.Levels {
		n += len(level)
	}

	return n
}
