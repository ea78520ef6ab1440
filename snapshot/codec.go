package snapshot

import (
	"fmt"

	commoncbor "github.com/datatrails/go-datatrails-common/cbor"
	"github.com/forestrie/go-nestedset/nestedset"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const (
	SnapshotVersion = uint8(1)

	// MaxSnapshotRecords bounds the record array accepted by the decoder.
	MaxSnapshotRecords = 1 << 24
)

// Snapshot is a flat record list as fetched from storage, plus the identity
// of the tree it encodes.
type Snapshot struct {
	Version uint8              `cbor:"1,keyasint"`
	TreeID  uuid.UUID          `cbor:"2,keyasint"`
	Records []nestedset.Record `cbor:"3,keyasint"`
}

func NewSnapshot(treeID uuid.UUID, records []nestedset.Record) Snapshot {
	return Snapshot{Version: SnapshotVersion, TreeID: treeID, Records: records}
}

func snapshotDecOpts() cbor.DecOptions {
	opts := commoncbor.NewDeterministicDecOpts()
	opts.MaxArrayElements = MaxSnapshotRecords
	return opts
}

// NewCBORCodec returns the codec used for snapshot blobs and files.
func NewCBORCodec() (commoncbor.CBORCodec, error) {
	codec, err := commoncbor.NewCBORCodec(
		commoncbor.NewDeterministicEncOpts(),
		snapshotDecOpts(),
	)
	if err != nil {
		return commoncbor.CBORCodec{}, err
	}
	return codec, nil
}

func EncodeCBOR(codec commoncbor.CBORCodec, s Snapshot) ([]byte, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	return codec.MarshalCBOR(s)
}

func DecodeCBOR(codec commoncbor.CBORCodec, data []byte) (Snapshot, error) {
	if len(data) == 0 {
		return Snapshot{}, ErrSnapshotEmpty
	}
	var s Snapshot
	if err := codec.UnmarshalInto(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrSnapshotVersion, s.Version)
	}
	return s, nil
}

// yamlSnapshot is the hand written fixture layout. version may be omitted.
type yamlSnapshot struct {
	Version uint8              `yaml:"version"`
	TreeID  string             `yaml:"tree_id"`
	Records []nestedset.Record `yaml:"records"`
}

// DecodeYAML reads a snapshot written by hand, for example:
//
//	tree_id: 01947000-3456-780f-bfa9-29881e3bac88
//	records:
//	  - {id: 1, name: A, left: 1, right: 4}
//	  - {id: 2, name: B, left: 2, right: 3}
func DecodeYAML(data []byte) (Snapshot, error) {
	if len(data) == 0 {
		return Snapshot{}, ErrSnapshotEmpty
	}
	var doc yamlSnapshot
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = SnapshotVersion
	}
	if doc.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("%w: %d", ErrSnapshotVersion, doc.Version)
	}

	treeID := uuid.Nil
	if doc.TreeID != "" {
		var err error
		if treeID, err = uuid.Parse(doc.TreeID); err != nil {
			return Snapshot{}, fmt.Errorf("decode snapshot tree_id: %w", err)
		}
	}
	return Snapshot{Version: doc.Version, TreeID: treeID, Records: doc.Records}, nil
}
