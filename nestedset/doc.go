package nestedset

/*

# Nested-set tree reconstruction

A nested-set (Modified Preorder Tree Traversal) table stores a hierarchy as
flat rows, each carrying a `Left` and `Right` bound assigned by a preorder
walk. A row's bounds strictly contain the bounds of all of its descendants,
so subtree and ancestor queries become range predicates and need no
recursion in the store.

This package rebuilds an in-memory, read-only tree from such rows. It does
not read or write the rows and it never renumbers bounds; the caller
supplies the list, in any order, however it was obtained.

## Build

Build sorts a copy of the records by `Left` and makes a single pass,
keeping a stack of open ancestor candidates:

1. pop every candidate that does not contain the current record. A
   candidate that fails once fails for every later record, as those all have
   a larger `Left`.
2. a non-empty stack means its top is the immediate parent.
3. an empty stack means a root. Only the first record may be a root.
4. push the current record.

Each record is pushed once and popped at most once, so after the
O(n log n) sort the pass is O(n).

## Storage

Nodes live in a single arena and refer to each other by `Ref` index, the
parent link being a plain index rather than an owning pointer. Records are
resolved to nodes through an index keyed by `Record.ID`, so ids must be
unique within one input (`ErrDuplicateRecord` otherwise).

Nodes are appended in sorted order, which makes `Ref` order preorder.

## Errors

Build fails with `ErrEmptyInput`, `ErrMalformedRecord` (`Left >= Right`),
`ErrDuplicateRecord` or `ErrMultipleRoots`. Queries given a record that is
not part of the tree fail with `ErrNotFound` and leave the tree usable.

*/
