package snapshot

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/azblob"
	"github.com/datatrails/go-datatrails-common/cbor"
)

// ReaderOptions provides options for FileReader and BlobReader.
// Readers ignore options that they don't support.
type ReaderOptions struct {
	// zero means no limit beyond the decoder's own cap
	maxRecords int

	// options that are forwarded when issuing a read blob call
	remoteReadOpts []azblob.Option

	codec *cbor.CBORCodec
}

// ReaderOptionsCopy creates an independent copy of opts
func ReaderOptionsCopy(opts ReaderOptions) ReaderOptions {
	cpy := opts

	cpy.remoteReadOpts = make([]azblob.Option, len(opts.remoteReadOpts))
	copy(cpy.remoteReadOpts, opts.remoteReadOpts)
	return cpy
}

// NewReaderOptions creates a new ReaderOptions object with the provided options
func NewReaderOptions(baseOpts ReaderOptions, opts ...ReaderOption) ReaderOptions {
	options := ReaderOptionsCopy(baseOpts)
	for _, o := range opts {
		o(&options)
	}
	return options
}

type ReaderOption func(*ReaderOptions)

// WithMaxRecords rejects snapshots holding more than n records.
func WithMaxRecords(n int) ReaderOption {
	return func(opts *ReaderOptions) {
		opts.maxRecords = n
	}
}

func WithReadBlobOption(opt azblob.Option) ReaderOption {
	return func(opts *ReaderOptions) {
		opts.remoteReadOpts = append(opts.remoteReadOpts, opt)
	}
}

func WithCBORCodec(codec cbor.CBORCodec) ReaderOption {
	return func(o *ReaderOptions) {
		o.codec = &codec
	}
}

func (o *ReaderOptions) checkSize(s Snapshot) error {
	if o.maxRecords > 0 && len(s.Records) > o.maxRecords {
		return fmt.Errorf("%w: %d records, limit %d", ErrSnapshotTooLarge, len(s.Records), o.maxRecords)
	}
	return nil
}

// cborCodec returns the configured codec. Readers install one at
// construction, so this never writes to o.
func (o *ReaderOptions) cborCodec() (cbor.CBORCodec, error) {
	if o.codec == nil {
		return cbor.CBORCodec{}, ErrCBORCodecNotProvided
	}
	return *o.codec, nil
}
