package nestedset

import "errors"

// Record is one row of a nested-set encoded hierarchy.
//
// Left and Right are the bounds assigned by a preorder walk of the tree. A
// record's bounds strictly contain the bounds of all of its descendants.
type Record struct {
	ID    int64  `cbor:"1,keyasint" yaml:"id"`
	Name  string `cbor:"2,keyasint" yaml:"name"`
	Left  int64  `cbor:"3,keyasint" yaml:"left"`
	Right int64  `cbor:"4,keyasint" yaml:"right"`
}

// Valid reports whether the bounds are well ordered.
func (r Record) Valid() bool {
	return r.Left < r.Right
}

// Contains reports whether o lies strictly inside r, which holds iff r is an
// ancestor of o in a well formed encoding.
func (r Record) Contains(o Record) bool {
	return r.Left < o.Left && r.Right > o.Right
}

// Disjoint reports whether the intervals of r and o do not overlap at all.
func (r Record) Disjoint(o Record) bool {
	return r.Right < o.Left || o.Right < r.Left
}

// Ref is a node store index.
type Ref uint32

const NoRef = ^Ref(0)

// MaxRecords is the largest record count a single tree can index. NoRef is
// reserved.
const MaxRecords = uint64(NoRef)

var (
	ErrEmptyInput      = errors.New("nestedset: no records supplied")
	ErrMalformedRecord = errors.New("nestedset: record left bound must be less than right bound")
	ErrMultipleRoots   = errors.New("nestedset: more than one record has no containing ancestor")
	ErrDuplicateRecord = errors.New("nestedset: duplicate record id")
	ErrTooManyRecords  = errors.New("nestedset: record count does not fit the node store")

	ErrNotFound    = errors.New("nestedset: record not found in tree")
	ErrNotAncestor = errors.New("nestedset: record is not an ancestor")
)

// CheckRecordCount checks whether count records can be addressed by Ref.
// MaxRecords itself is accepted: its refs run up to NoRef-1.
func CheckRecordCount(count uint64) error {
	if count > MaxRecords {
		return ErrTooManyRecords
	}
	return nil
}
