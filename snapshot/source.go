package snapshot

import (
	"context"

	"github.com/forestrie/go-nestedset/nestedset"
)

// Source supplies the flat record list a tree is built from
type Source interface {
	Records(ctx context.Context) ([]nestedset.Record, error)
}

type SourceFunc func(ctx context.Context) ([]nestedset.Record, error)

func (f SourceFunc) Records(ctx context.Context) ([]nestedset.Record, error) {
	return f(ctx)
}

// StaticSource serves records already in memory
type StaticSource []nestedset.Record

func (s StaticSource) Records(_ context.Context) ([]nestedset.Record, error) {
	return s, nil
}
