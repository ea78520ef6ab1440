package snapshot

import (
	"context"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-nestedset/nestedset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Loader reads records from a Source and builds the tree they describe
type Loader struct {
	log logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{log: log}
}

// Load builds the tree for the records supplied by src. Errors from the
// builder are wrapped, so errors.Is still matches the nestedset sentinels.
func (l *Loader) Load(ctx context.Context, src Source) (*nestedset.Tree, error) {

	ctx, span := startLoadSpan(ctx)
	defer span.End()

	records, err := src.Records(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read records")
		recordLoadMetrics(ctx, outcomeReadError, 0)
		return nil, fmt.Errorf("read records: %w", err)
	}
	span.SetAttributes(attribute.Int("nestedset.record_count", len(records)))
	l.log.Debugf("building tree from %d records", len(records))

	tree, err := nestedset.Build(records)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build tree")
		recordLoadMetrics(ctx, outcomeBuildError, len(records))
		return nil, fmt.Errorf("build tree: %w", err)
	}

	recordLoadMetrics(ctx, outcomeOK, len(records))
	l.log.Infof("loaded tree: root %d %q, %d records", tree.Root().ID, tree.Root().Name, tree.Len())
	return tree, nil
}
