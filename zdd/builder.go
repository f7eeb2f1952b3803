// Package zdd: builder.go owns the per-construction mutable state that the
// reference implementation kept as process-wide statics (the node-id
// counter and the terminal singletons). Scoping that state to a Builder
// value means two constructions can run one after another in the same
// process without the second inheriting the first's id sequence.
package zdd

// Builder assigns node identities for a single Construct call. A zero-value
// Builder is not usable; call NewBuilder.
type Builder struct {
	nextID int
	zero   *Node
	one    *Node
}

// NewBuilder returns a Builder with freshly allocated terminal nodes
// (id 0 and id 1) and a node-id counter starting at 2, matching the
// reference implementation's id numbering.
func NewBuilder() *Builder {
	return &Builder{
		nextID: 2,
		zero:   &Node{ID: 0},
		one:    &Node{ID: 1},
	}
}

// newNode allocates an unassigned interior node carrying a copy of parent's
// frontier state, restricted to the keys parent happens to carry; the caller
// (checkTerminal) extends that state via updateInfo and prunes it to the
// next level's frontier.
func (b *Builder) newNode(parent *Node) *Node {
	n := &Node{
		deg:  make(map[int]int, len(parent.deg)),
		comp: make(map[int]int, len(parent.comp)),
	}
	for k, v := range parent.deg {
		n.deg[k] = v
	}
	for k, v := range parent.comp {
		n.comp[k] = v
	}

	return n
}

// admit assigns the next sequential id to n, marking it a permanent member
// of the diagram. Must be called exactly once per node that is not merged
// into an existing equivalent.
func (b *Builder) admit(n *Node) {
	n.ID = b.nextID
	b.nextID++
}

// root returns the diagram's single level-1 node. Its frontier is empty
// (F[0] = ∅ always), so deg/comp start empty too — updateInfo lazily
// initializes deg[v]=0, comp[v]=v the first time a vertex is touched,
// whether that vertex is the root's or any later copy's.
func (b *Builder) root() *Node {
	node := &Node{
		deg:  make(map[int]int),
		comp: make(map[int]int),
	}
	b.admit(node)

	return node
}
