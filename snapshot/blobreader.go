package snapshot

import (
	"context"
	"fmt"
	"io"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/cbor"
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-nestedset/nestedset"
	"github.com/google/uuid"
)

type blobReader interface {
	Reader(
		ctx context.Context,
		identity string,
		opts ...azblob.Option,
	) (*azblob.ReaderResponse, error)
}

// BlobReader reads CBOR snapshots from blob storage
type BlobReader struct {
	log   logger.Logger
	store blobReader
	opts  ReaderOptions
}

func NewBlobReader(
	log logger.Logger, store blobReader, codec cbor.CBORCodec, opts ...ReaderOption,
) BlobReader {
	r := BlobReader{
		log:   log,
		store: store,
	}
	r.opts = NewReaderOptions(ReaderOptions{}, append([]ReaderOption{WithCBORCodec(codec)}, opts...)...)
	return r
}

// ReadSnapshot reads the snapshot stored for treeID. The tree id carried by
// the snapshot must match the one it was read for.
func (r *BlobReader) ReadSnapshot(ctx context.Context, treeID uuid.UUID, opts ...ReaderOption) (Snapshot, error) {

	if r.store == nil {
		return Snapshot{}, ErrStoreNotProvided
	}
	options := NewReaderOptions(r.opts, opts...)

	codec, err := options.cborCodec()
	if err != nil {
		return Snapshot{}, err
	}

	blobPath := SnapshotBlobPath(treeID)
	rr, err := r.store.Reader(ctx, blobPath, options.remoteReadOpts...)
	if err != nil {
		return Snapshot{}, err
	}
	if rr == nil || rr.Reader == nil {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSnapshotEmpty, blobPath)
	}
	defer rr.Reader.Close()

	data, err := io.ReadAll(rr.Reader)
	if err != nil {
		return Snapshot{}, err
	}

	s, err := DecodeCBOR(codec, data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", blobPath, err)
	}
	if s.TreeID != treeID {
		return Snapshot{}, fmt.Errorf("%w: %s holds %s", ErrTreeIDMismatch, blobPath, s.TreeID)
	}
	if err = options.checkSize(s); err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", blobPath, err)
	}

	r.log.Debugf("read snapshot %s: %d records", blobPath, len(s.Records))
	return s, nil
}

// BlobSource adapts the snapshot stored for treeID to a Source
func (r *BlobReader) BlobSource(treeID uuid.UUID, opts ...ReaderOption) Source {
	return SourceFunc(func(ctx context.Context) ([]nestedset.Record, error) {
		s, err := r.ReadSnapshot(ctx, treeID, opts...)
		if err != nil {
			return nil, err
		}
		return s.Records, nil
	})
}
