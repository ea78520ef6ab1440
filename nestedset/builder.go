package nestedset

import (
	"cmp"
	"fmt"
	"slices"
)

// Build reconstructs the tree encoded by records.
//
// records may be in any order and is not modified. On failure no tree is
// returned.
func Build(records []Record) (*Tree, error) {
	if len(records) == 0 {
		return nil, ErrEmptyInput
	}
	if err := CheckRecordCount(uint64(len(records))); err != nil {
		return nil, err
	}
	for _, r := range records {
		if !r.Valid() {
			return nil, fmt.Errorf(
				"%w: id=%d, left=%d, right=%d", ErrMalformedRecord, r.ID, r.Left, r.Right)
		}
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(a.Left, b.Left)
	})

	b := newBuilder(len(sorted))
	for _, r := range sorted {
		if err := b.insertSorted(r); err != nil {
			return nil, err
		}
	}
	return b.finalize(), nil
}

// builder carries the state of a single Build call.
type builder struct {
	store nodeStore
	index map[int64]Ref
	root  Ref

	// stack holds the open ancestor candidates, innermost last.
	stack []Ref
}

func newBuilder(capacity int) *builder {
	return &builder{
		store: newNodeStore(capacity),
		index: make(map[int64]Ref, capacity),
		root:  NoRef,
	}
}

// insertSorted adds r to the tree.
//
// r.Left MUST be >= the Left of every record inserted before it.
func (b *builder) insertSorted(r Record) error {
	if _, ok := b.index[r.ID]; ok {
		return fmt.Errorf("%w: id=%d", ErrDuplicateRecord, r.ID)
	}

	// A candidate that does not contain r can not contain any later record
	// either, as those all have a larger Left.
	for len(b.stack) > 0 && !b.store.value(b.stack[len(b.stack)-1]).Contains(r) {
		b.stack = b.stack[:len(b.stack)-1]
	}

	ref := b.store.add(r)
	if len(b.stack) > 0 {
		b.store.link(b.stack[len(b.stack)-1], ref)
	} else {
		if b.root != NoRef {
			first := b.store.value(b.root)
			return fmt.Errorf(
				"%w: id=%d [%d,%d] is outside root id=%d [%d,%d]",
				ErrMultipleRoots, r.ID, r.Left, r.Right, first.ID, first.Left, first.Right)
		}
		b.root = ref
	}

	b.stack = append(b.stack, ref)
	b.index[r.ID] = ref
	return nil
}

func (b *builder) finalize() *Tree {
	return &Tree{
		store: b.store,
		index: b.index,
		root:  b.root,
	}
}
