package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricRenderTotal   = "keepalive.render.total"
	MetricRemovalsTotal = "keepalive.removals.total"
	MetricEntries       = "keepalive.entries"
)

// Metrics records cache activity.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly and never block.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordRender records one render pass. inserted reports whether the pass
	// added an entry to the store.
	RecordRender(ctx context.Context, meta ComponentMeta, outcome string, inserted bool)

	// RecordRemoval records one entry leaving the store.
	RecordRemoval(ctx context.Context, meta ComponentMeta, reason string, destroyed bool)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	renders  metric.Int64Counter
	removals metric.Int64Counter
	entries  metric.Int64UpDownCounter
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	return newMetrics(meter)
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	renders, err := meter.Int64Counter(
		MetricRenderTotal,
		metric.WithDescription("Render passes handled by keep-alive controllers"),
		metric.WithUnit("{pass}"),
	)
	if err != nil {
		return nil, err
	}

	removals, err := meter.Int64Counter(
		MetricRemovalsTotal,
		metric.WithDescription("Entries removed from keep-alive stores"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	entries, err := meter.Int64UpDownCounter(
		MetricEntries,
		metric.WithDescription("Live entries held by keep-alive stores"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		renders:  renders,
		removals: removals,
		entries:  entries,
	}, nil
}

func (m *metricsImpl) RecordRender(ctx context.Context, meta ComponentMeta, outcome string, inserted bool) {
	attrs := []attribute.KeyValue{attribute.String("outcome", outcome)}
	if meta.Name != "" {
		attrs = append(attrs, attribute.String("component.name", meta.Name))
	}
	m.renders.Add(ctx, 1, metric.WithAttributes(attrs...))

	if inserted {
		m.entries.Add(ctx, 1)
	}
}

func (m *metricsImpl) RecordRemoval(ctx context.Context, meta ComponentMeta, reason string, destroyed bool) {
	attrs := []attribute.KeyValue{
		attribute.String("reason", reason),
		attribute.Bool("destroyed", destroyed),
	}
	if meta.Name != "" {
		attrs = append(attrs, attribute.String("component.name", meta.Name))
	}
	m.removals.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.entries.Add(ctx, -1)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (noopMetrics) RecordRender(context.Context, ComponentMeta, string, bool)  {}
func (noopMetrics) RecordRemoval(context.Context, ComponentMeta, string, bool) {}
