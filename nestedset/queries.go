package nestedset

import (
	"fmt"
	"slices"
)

// Descendants returns every record below r in preorder.
func (t *Tree) Descendants(r Record) ([]Record, error) {
	ref, err := t.resolve(r)
	if err != nil {
		return nil, err
	}
	out := []Record{}
	t.walkFrom(ref, func(ref Ref, depth int) bool {
		if depth > 0 {
			out = append(out, t.store.value(ref))
		}
		return true
	})
	return out, nil
}

// Ancestors returns the chain of ancestors of r, root first. It is empty
// for the root.
func (t *Tree) Ancestors(r Record) ([]Record, error) {
	ref, err := t.resolve(r)
	if err != nil {
		return nil, err
	}
	refs := t.ancestorRefs(ref)
	slices.Reverse(refs)
	return t.store.values(refs), nil
}

// Path returns the records from first down to last, both included. first
// must be last or one of its ancestors.
func (t *Tree) Path(first Record, last Record) ([]Record, error) {
	from, err := t.resolve(first)
	if err != nil {
		return nil, err
	}
	to, err := t.resolve(last)
	if err != nil {
		return nil, err
	}

	refs := []Ref{to}
	for ref := to; ref != from; {
		ref = t.store.parentOf(ref)
		if ref == NoRef {
			return nil, fmt.Errorf("%w: id=%d is not above id=%d", ErrNotAncestor, first.ID, last.ID)
		}
		refs = append(refs, ref)
	}
	slices.Reverse(refs)
	return t.store.values(refs), nil
}

// Leaves returns the records with no children in preorder.
func (t *Tree) Leaves() []Record {
	out := []Record{}
	t.walkFrom(t.root, func(ref Ref, _ int) bool {
		if len(t.store.childrenOf(ref)) == 0 {
			out = append(out, t.store.value(ref))
		}
		return true
	})
	return out
}

// Depth returns the number of edges between the root and r.
func (t *Tree) Depth(r Record) (int, error) {
	ref, err := t.resolve(r)
	if err != nil {
		return 0, err
	}
	return len(t.ancestorRefs(ref)), nil
}

// Walk calls fn for every record in preorder together with its depth below
// the root. Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(r Record, depth int) bool) {
	t.walkFrom(t.root, func(ref Ref, depth int) bool {
		return fn(t.store.value(ref), depth)
	})
}

// ancestorRefs returns the ancestors of ref, nearest first.
func (t *Tree) ancestorRefs(ref Ref) []Ref {
	var refs []Ref
	for p := t.store.parentOf(ref); p != NoRef; p = t.store.parentOf(p) {
		refs = append(refs, p)
	}
	return refs
}

// walkFrom visits the subtree at start in preorder. depth is relative to
// start.
func (t *Tree) walkFrom(start Ref, fn func(ref Ref, depth int) bool) {
	type frame struct {
		ref   Ref
		depth int
	}
	stack := []frame{{ref: start}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.ref, top.depth) {
			return
		}
		children := t.store.childrenOf(top.ref)
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{ref: children[i], depth: top.depth + 1})
		}
	}
}
