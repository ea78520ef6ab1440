package nestedset

import "iter"

// BreadthFirstIterator visits a tree level by level, root first. Siblings
// are visited in ascending Left order.
//
// An iterator is single use; ask the tree for a new one to traverse again.
type BreadthFirstIterator struct {
	t     *Tree
	queue []Ref
	head  int
}

// BreadthFirstIterator returns a fresh breadth first traversal of t.
func (t *Tree) BreadthFirstIterator() *BreadthFirstIterator {
	queue := make([]Ref, 1, t.store.len())
	queue[0] = t.root
	return &BreadthFirstIterator{t: t, queue: queue}
}

// Next returns the next record, or ok=false once every node has been
// visited.
func (it *BreadthFirstIterator) Next() (r Record, ok bool) {
	if it.head >= len(it.queue) {
		return Record{}, false
	}
	ref := it.queue[it.head]
	it.head++
	it.queue = append(it.queue, it.t.store.childrenOf(ref)...)
	return it.t.store.value(ref), true
}

// BreadthFirst is the range-over-func form of BreadthFirstIterator.
func (t *Tree) BreadthFirst() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		it := t.BreadthFirstIterator()
		for r, ok := it.Next(); ok; r, ok = it.Next() {
			if !yield(r) {
				return
			}
		}
	}
}

// DepthFirstIterator visits a tree in preorder, which is ascending Left
// order for a well formed encoding.
type DepthFirstIterator struct {
	t     *Tree
	stack []Ref
}

// DepthFirstIterator returns a fresh preorder traversal of t.
func (t *Tree) DepthFirstIterator() *DepthFirstIterator {
	return &DepthFirstIterator{t: t, stack: []Ref{t.root}}
}

// Next returns the next record, or ok=false when the traversal is complete.
func (it *DepthFirstIterator) Next() (r Record, ok bool) {
	if len(it.stack) == 0 {
		return Record{}, false
	}
	ref := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	// push in reverse so the leftmost child is popped first
	children := it.t.store.childrenOf(ref)
	for i := len(children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, children[i])
	}
	return it.t.store.value(ref), true
}

// DepthFirst is the range-over-func form of DepthFirstIterator.
func (t *Tree) DepthFirst() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		it := t.DepthFirstIterator()
		for r, ok := it.Next(); ok; r, ok = it.Next() {
			if !yield(r) {
				return
			}
		}
	}
}
