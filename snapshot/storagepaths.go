package snapshot

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	V1NestedSetsPrefix = "v1/nestedsets"
	TreePrefix         = "tree/"
	SnapshotBlobName   = "snapshot.cbor"
)

// SnapshotBlobPath returns the blob path of the snapshot for treeID
//
//	v1/nestedsets/tree/01947000-3456-780f-bfa9-29881e3bac88/snapshot.cbor
func SnapshotBlobPath(treeID uuid.UUID) string {
	return fmt.Sprintf("%s/%s%s/%s", V1NestedSetsPrefix, TreePrefix, treeID.String(), SnapshotBlobName)
}

// ParseTreeID extracts the tree id which follows prefix in storagePath. The
// uuid may be followed by a slash or the end of the string.
func ParseTreeID(prefix string, storagePath string) (uuid.UUID, error) {

	i := strings.Index(storagePath, prefix)
	if i == -1 {
		return uuid.Nil, fmt.Errorf("%w: %s", ErrTreeIDMissing, storagePath)
	}
	rest := storagePath[i+len(prefix):]

	j := strings.Index(rest, "/")
	if j == -1 {
		j = len(rest)
	}
	treeID, err := uuid.Parse(rest[:j])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s: %v", ErrTreeIDMissing, storagePath, err)
	}
	return treeID, nil
}
