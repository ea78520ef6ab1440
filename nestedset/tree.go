package nestedset

import "fmt"

// Tree is an immutable snapshot of a nested-set hierarchy.
//
// All methods are read only, so a Tree may be shared between goroutines
// without locking.
type Tree struct {
	store nodeStore
	index map[int64]Ref
	root  Ref
}

// Len returns the number of records in the tree.
func (t *Tree) Len() int {
	return t.store.len()
}

// Root returns the record with no ancestor.
func (t *Tree) Root() Record {
	return t.store.value(t.root)
}

// Lookup returns the record with the given id.
func (t *Tree) Lookup(id int64) (Record, bool) {
	ref, ok := t.index[id]
	if !ok {
		return Record{}, false
	}
	return t.store.value(ref), true
}

// LookupName returns the first record, in ascending Left order, with the
// given name. Names need not be unique.
func (t *Tree) LookupName(name string) (Record, bool) {
	for _, n := range t.store.nodes {
		if n.value.Name == name {
			return n.value, true
		}
	}
	return Record{}, false
}

// Parent returns the parent of r. ok is false when r is the root.
func (t *Tree) Parent(r Record) (parent Record, ok bool, err error) {
	ref, err := t.resolve(r)
	if err != nil {
		return Record{}, false, err
	}
	p := t.store.parentOf(ref)
	if p == NoRef {
		return Record{}, false, nil
	}
	return t.store.value(p), true, nil
}

// Children returns the immediate children of r in ascending Left order. The
// result is empty, not nil, for a leaf.
func (t *Tree) Children(r Record) ([]Record, error) {
	ref, err := t.resolve(r)
	if err != nil {
		return nil, err
	}
	return t.store.values(t.store.childrenOf(ref)), nil
}

// resolve finds the node holding r. The index is keyed by id, and the
// stored value must equal r so that a stale copy of a record is not
// silently accepted.
func (t *Tree) resolve(r Record) (Ref, error) {
	ref, ok := t.index[r.ID]
	if !ok {
		return NoRef, fmt.Errorf("%w: id=%d", ErrNotFound, r.ID)
	}
	if t.store.value(ref) != r {
		return NoRef, fmt.Errorf("%w: id=%d does not match the stored record", ErrNotFound, r.ID)
	}
	return ref, nil
}
