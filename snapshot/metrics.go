package snapshot

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("nestedset.snapshot")
	meter  = otel.Meter("nestedset.snapshot")
)

const (
	outcomeOK         = "ok"
	outcomeReadError  = "read_error"
	outcomeBuildError = "build_error"
)

var (
	loadTotal   metric.Int64Counter
	loadRecords metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the metrics. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		loadTotal, err = meter.Int64Counter(
			"nestedset_load_total",
			metric.WithDescription("Total number of tree loads by outcome"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		loadRecords, err = meter.Int64Histogram(
			"nestedset_load_records",
			metric.WithDescription("Number of records per successful tree load"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func recordLoadMetrics(ctx context.Context, outcome string, recordCount int) {
	if err := initMetrics(); err != nil {
		return
	}

	loadTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	if outcome == outcomeOK {
		loadRecords.Record(ctx, int64(recordCount))
	}
}

func startLoadSpan(ctx context.Context) (context.Context, trace.Span) {
	return tracer.Start(ctx, "nestedset.snapshot.load")
}
