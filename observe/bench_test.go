package observe

import (
	"context"
	"io"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// BenchmarkLogger_Info measures structured log encoding.
func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLoggerWithWriter("info", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(ctx, "cache hit", Field{Key: "entries", Value: 3})
	}
}

// BenchmarkLogger_LevelFiltering measures the cost of a filtered call.
func BenchmarkLogger_LevelFiltering(b *testing.B) {
	logger := NewLoggerWithWriter("error", io.Discard)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(ctx, "filtered")
	}
}

// BenchmarkTracer_StartEndSpan measures span overhead per render pass.
func BenchmarkTracer_StartEndSpan(b *testing.B) {
	tp := sdktrace.NewTracerProvider()
	tr := NewTracer(tp.Tracer("bench"))
	ctx := context.Background()
	meta := ComponentMeta{Key: "1::home", Name: "Home"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, span := tr.StartSpan(ctx, "render", meta)
		tr.EndSpan(span, nil)
	}
}

// BenchmarkMetrics_RecordRender measures counter overhead per render pass.
func BenchmarkMetrics_RecordRender(b *testing.B) {
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(sdkmetric.NewManualReader()))
	m, err := newMetrics(mp.Meter("bench"))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	meta := ComponentMeta{Name: "Home"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.RecordRender(ctx, meta, "hit", false)
	}
}
