package nestedset

// node is a single arena slot. parent is a weak back reference; the
// children slice is the only ownership edge.
type node struct {
	value    Record
	parent   Ref
	children []Ref
}

// nodeStore is the arena holding every node of one tree. Nodes are appended
// in ascending Left order, so Ref order equals preorder.
type nodeStore struct {
	nodes []node
}

func newNodeStore(capacity int) nodeStore {
	return nodeStore{nodes: make([]node, 0, capacity)}
}

// add appends r as a detached node and returns its ref.
func (s *nodeStore) add(r Record) Ref {
	ref := Ref(len(s.nodes))
	s.nodes = append(s.nodes, node{value: r, parent: NoRef})
	return ref
}

// link makes child the last child of parent.
func (s *nodeStore) link(parent Ref, child Ref) {
	s.nodes[child].parent = parent
	s.nodes[parent].children = append(s.nodes[parent].children, child)
}

func (s *nodeStore) len() int { return len(s.nodes) }

func (s *nodeStore) value(ref Ref) Record { return s.nodes[ref].value }

func (s *nodeStore) parentOf(ref Ref) Ref { return s.nodes[ref].parent }

func (s *nodeStore) childrenOf(ref Ref) []Ref { return s.nodes[ref].children }

// values resolves refs to their records. The result is never nil.
func (s *nodeStore) values(refs []Ref) []Record {
	out := make([]Record, 0, len(refs))
	for _, ref := range refs {
		out = append(out, s.nodes[ref].value)
	}
	return out
}
