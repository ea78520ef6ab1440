package snapshot

import "errors"

var (
	ErrSnapshotEmpty     = errors.New("the snapshot data is empty")
	ErrSnapshotVersion   = errors.New("the snapshot version is not supported")
	ErrSnapshotTooLarge  = errors.New("the snapshot holds more records than the reader allows")
	ErrUnknownFormat     = errors.New("the snapshot format could not be determined from the file name")
	ErrTreeIDMismatch    = errors.New("the snapshot tree id does not match the requested tree id")
	ErrTreeIDMissing     = errors.New("no tree id was found in the storage path")
	ErrOpenerNotProvided = errors.New("a file opener was required but not provided")
	ErrStoreNotProvided  = errors.New("a blob store was required but not provided")

	ErrCBORCodecNotProvided = errors.New("a CBOR codec was required but not provided")
)
