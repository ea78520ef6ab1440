package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-nestedset/nestedset"
)

type Opener interface {
	Open(string) (io.ReadCloser, error)
}

// OSOpener opens files on the local file system
type OSOpener struct{}

func (*OSOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// FileReader reads snapshots from local files. The format is chosen by the
// file extension: .cbor, .yaml or .yml
//
// A file kept in a local replica of blob storage, under a tree/{uuid}/
// directory, must hold the snapshot of that tree.
//
// A FileReader is safe for concurrent use once constructed.
type FileReader struct {
	log    logger.Logger
	opener Opener
	opts   ReaderOptions
}

func NewFileReader(log logger.Logger, opener Opener, opts ...ReaderOption) (FileReader, error) {
	if opener == nil {
		opener = &OSOpener{}
	}
	options := NewReaderOptions(ReaderOptions{}, opts...)
	if options.codec == nil {
		codec, err := NewCBORCodec()
		if err != nil {
			return FileReader{}, err
		}
		options.codec = &codec
	}
	return FileReader{
		log:    log,
		opener: opener,
		opts:   options,
	}, nil
}

func (r *FileReader) ReadSnapshot(path string) (Snapshot, error) {

	if r.opener == nil {
		return Snapshot{}, ErrOpenerNotProvided
	}

	decode, err := r.decoderFor(path)
	if err != nil {
		return Snapshot{}, err
	}

	f, err := r.opener.Open(path)
	if err != nil {
		return Snapshot{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Snapshot{}, err
	}

	s, err := decode(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	if err = r.opts.checkSize(s); err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	if treeID, err := ParseTreeID(TreePrefix, filepath.ToSlash(path)); err == nil && s.TreeID != treeID {
		return Snapshot{}, fmt.Errorf("%w: %s holds %s", ErrTreeIDMismatch, path, s.TreeID)
	}

	r.log.Debugf("read snapshot %s: tree %s, %d records", path, s.TreeID, len(s.Records))
	return s, nil
}

func (r *FileReader) decoderFor(path string) (func([]byte) (Snapshot, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor":
		codec, err := r.opts.cborCodec()
		if err != nil {
			return nil, err
		}
		return func(data []byte) (Snapshot, error) { return DecodeCBOR(codec, data) }, nil
	case ".yaml", ".yml":
		return DecodeYAML, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// FileSource adapts the snapshot at path to a Source
func (r *FileReader) FileSource(path string) Source {
	return SourceFunc(func(_ context.Context) ([]nestedset.Record, error) {
		s, err := r.ReadSnapshot(path)
		if err != nil {
			return nil, err
		}
		return s.Records, nil
	})
}
