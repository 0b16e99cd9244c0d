// Package telemetry wires OpenTelemetry metrics for citygraph.
//
// Init installs a MeterProvider that writes to a stdout-style exporter when
// metrics are enabled, and leaves the global no-op provider in place
// otherwise. Recorder owns the instruments and is safe to use either way.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

// ErrNilContext is returned by Init when ctx is nil.
var ErrNilContext = errors.New("telemetry: nil context")

// ServiceName identifies citygraph in exported resources.
const ServiceName = "citygraph"

// Config controls telemetry behavior.
type Config struct {
	// Enabled turns on the metric exporter.
	Enabled bool

	// Writer receives exported metrics; nil means os.Stderr.
	Writer io.Writer

	// ServiceVersion is attached as service.version.
	ServiceVersion string
}

// Init sets up the global MeterProvider according to cfg.
//
// The returned shutdown flushes pending metrics and must be called on exit.
// When cfg.Enabled is false it is a no-op.
//
// Thread Safety: Call once at application startup.
func Init(ctx context.Context, cfg Config) (shutdown func(context.Context) error, err error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	mp, err := newMeterProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("init meter: %w", err)
	}
	otel.SetMeterProvider(mp)

	return mp.Shutdown, nil
}

func newMeterProvider(cfg Config) (*sdkmetric.MeterProvider, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	exporter, err := stdoutmetric.New(
		stdoutmetric.WithWriter(w),
		stdoutmetric.WithPrettyPrint(),
	)
	if err != nil {
		return nil, fmt.Errorf("create stdout metric exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		"",
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", cfg.ServiceVersion),
	)

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
	), nil
}
