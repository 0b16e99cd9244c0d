package telemetry

import (
	"context"
	"time"

	"github.com/katalvlaran/citygraph/loader"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName scopes every citygraph instrument.
const MeterName = "citygraph"

// Instrument names.
const (
	MetricLoadLines     = "citygraph_load_lines_total"
	MetricLoadDuration  = "citygraph_load_duration_seconds"
	MetricMSTTotal      = "citygraph_mst_total"
	MetricMSTDuration   = "citygraph_mst_duration_seconds"
	MetricMSTEdges      = "citygraph_mst_edges"
	MetricQueryTotal    = "citygraph_query_total"
	MetricQueryDuration = "citygraph_query_duration_seconds"
)

// Recorder holds the instruments for loads, MST runs and queries.
// A nil *Recorder records nothing.
type Recorder struct {
	loadLines     metric.Int64Counter
	loadDuration  metric.Float64Histogram
	mstTotal      metric.Int64Counter
	mstDuration   metric.Float64Histogram
	mstEdges      metric.Int64Histogram
	queryTotal    metric.Int64Counter
	queryDuration metric.Float64Histogram
}

// NewRecorder creates the instruments on mp (use otel.GetMeterProvider() for the global one).
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(MeterName)
	var (
		r   Recorder
		err error
	)

	if r.loadLines, err = meter.Int64Counter(MetricLoadLines,
		metric.WithDescription("Input lines processed by outcome"),
	); err != nil {
		return nil, err
	}
	if r.loadDuration, err = meter.Float64Histogram(MetricLoadDuration,
		metric.WithDescription("Duration of tabular loads"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if r.mstTotal, err = meter.Int64Counter(MetricMSTTotal,
		metric.WithDescription("MST computations by method and outcome"),
	); err != nil {
		return nil, err
	}
	if r.mstDuration, err = meter.Float64Histogram(MetricMSTDuration,
		metric.WithDescription("Duration of MST computations"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if r.mstEdges, err = meter.Int64Histogram(MetricMSTEdges,
		metric.WithDescription("Edges in each computed tree"),
	); err != nil {
		return nil, err
	}
	if r.queryTotal, err = meter.Int64Counter(MetricQueryTotal,
		metric.WithDescription("Distance and route queries by kind and outcome"),
	); err != nil {
		return nil, err
	}
	if r.queryDuration, err = meter.Float64Histogram(MetricQueryDuration,
		metric.WithDescription("Duration of distance and route queries"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return &r, nil
}

// RecordLoad records one load's outcome counts and duration.
func (r *Recorder) RecordLoad(ctx context.Context, rep loader.Report, d time.Duration) {
	if r == nil {
		return
	}
	for outcome, n := range map[string]int{
		"accepted": rep.Accepted,
		"rejected": rep.Rejected,
		"skipped":  rep.Skipped,
	} {
		if n > 0 {
			r.loadLines.Add(ctx, int64(n), metric.WithAttributes(attribute.String("outcome", outcome)))
		}
	}
	r.loadDuration.Record(ctx, d.Seconds())
}

// RecordMST records one MST computation.
func (r *Recorder) RecordMST(ctx context.Context, method string, edges int, spanning bool, d time.Duration) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.Bool("spanning", spanning),
	)
	r.mstTotal.Add(ctx, 1, attrs)
	r.mstDuration.Record(ctx, d.Seconds(), attrs)
	r.mstEdges.Record(ctx, int64(edges), metric.WithAttributes(attribute.String("method", method)))
}

// RecordQuery records one distance or route lookup.
func (r *Recorder) RecordQuery(ctx context.Context, kind string, found bool, d time.Duration) {
	if r == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("query_type", kind),
		attribute.Bool("found", found),
	)
	r.queryTotal.Add(ctx, 1, attrs)
	r.queryDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("query_type", kind)))
}
