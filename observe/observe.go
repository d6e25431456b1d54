package observe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/jonwraymond/keepalive/observe/exporters"
)

// DefaultServiceName is the service.name used when Config leaves it empty.
const DefaultServiceName = "keepalive"

// ScopeKey is the resource attribute naming the controller scope.
const ScopeKey = attribute.Key("keepalive.scope")

// instrumentationName names the tracer and meter.
const instrumentationName = "github.com/jonwraymond/keepalive"

// Config selects where the telemetry of one keep-alive controller goes. The
// zero value is valid and discards everything.
type Config struct {
	// ServiceName is the service.name resource attribute.
	// Default: DefaultServiceName.
	ServiceName string

	// Version is the service.version resource attribute.
	Version string

	// Scope names the parent scope the controller caches for, such as the
	// router view. Recorded as the keepalive.scope resource attribute.
	Scope string

	// TraceExporter is one of exporters.TracingExporters. Empty disables
	// tracing.
	TraceExporter string

	// SampleRatio is the fraction of render passes traced, in [0, 1]. Zero
	// traces every pass.
	SampleRatio float64

	// MetricsExporter is one of exporters.MetricsExporters. Empty disables
	// metrics.
	MetricsExporter string

	// LogLevel is debug, info, warn or error. Empty disables logging.
	LogLevel string

	// LogWriter receives JSON log lines. Default: stderr.
	LogWriter io.Writer
}

// Validate reports every invalid field, joined.
func (c Config) Validate() error {
	var errs []error
	if c.TraceExporter != "" && !slices.Contains(exporters.TracingExporters, c.TraceExporter) {
		errs = append(errs, fmt.Errorf("%w: trace exporter %q", ErrInvalidConfig, c.TraceExporter))
	}
	if math.IsNaN(c.SampleRatio) || c.SampleRatio < 0 || c.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("%w: sample ratio %v outside [0, 1]", ErrInvalidConfig, c.SampleRatio))
	}
	if c.MetricsExporter != "" && !slices.Contains(exporters.MetricsExporters, c.MetricsExporter) {
		errs = append(errs, fmt.Errorf("%w: metrics exporter %q", ErrInvalidConfig, c.MetricsExporter))
	}
	if _, ok := lookupLogLevel(c.LogLevel); c.LogLevel != "" && !ok {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.LogLevel))
	}
	return errors.Join(errs...)
}

func (c Config) withDefaults() Config {
	if c.ServiceName == "" {
		c.ServiceName = DefaultServiceName
	}
	if c.SampleRatio == 0 {
		c.SampleRatio = 1
	}
	if c.LogWriter == nil {
		c.LogWriter = os.Stderr
	}
	return c
}

// Observer owns the telemetry providers behind a controller's instruments.
// Providers are never installed as OpenTelemetry globals, so several
// controllers can export to different places.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - Errors: Shutdown is idempotent and returns the same error on every call.
type Observer struct {
	inst      Instruments
	shutdowns []func(context.Context) error

	once        sync.Once
	shutdownErr error
}

// NewObserver builds instruments for cfg. Disabled signals get no-op
// instruments.
func NewObserver(ctx context.Context, cfg Config) (*Observer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	res, err := newResource(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("observe: resource: %w", err)
	}

	obs := &Observer{inst: NoopInstruments()}
	if err := obs.setup(ctx, cfg, res); err != nil {
		_ = obs.Shutdown(ctx)
		return nil, err
	}
	return obs, nil
}

func (o *Observer) setup(ctx context.Context, cfg Config, res *resource.Resource) error {
	if cfg.TraceExporter != "" {
		exp, err := exporters.NewTracingExporter(ctx, cfg.TraceExporter)
		if err != nil {
			return fmt.Errorf("observe: tracing: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
			sdktrace.WithBatcher(exp),
		)
		o.shutdowns = append(o.shutdowns, tp.Shutdown)
		o.inst.Tracer = NewTracer(tp.Tracer(instrumentationName))
	}

	if cfg.MetricsExporter != "" {
		reader, err := exporters.NewMetricsReader(ctx, cfg.MetricsExporter)
		if err != nil {
			return fmt.Errorf("observe: metrics: %w", err)
		}
		mp := sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(reader),
		)
		o.shutdowns = append(o.shutdowns, mp.Shutdown)
		m, err := NewMetrics(mp.Meter(instrumentationName))
		if err != nil {
			return fmt.Errorf("observe: metrics: %w", err)
		}
		o.inst.Metrics = m
	}

	if cfg.LogLevel != "" {
		o.inst.Logger = NewLoggerWithWriter(cfg.LogLevel, cfg.LogWriter)
	}
	return nil
}

func newResource(ctx context.Context, cfg Config) (*resource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(cfg.ServiceName)}
	if cfg.Version != "" {
		attrs = append(attrs, semconv.ServiceVersion(cfg.Version))
	}
	if cfg.Scope != "" {
		attrs = append(attrs, ScopeKey.String(cfg.Scope))
	}
	return resource.New(ctx, resource.WithAttributes(attrs...))
}

// NewNoopObserver returns an observer whose instruments discard everything.
func NewNoopObserver() *Observer {
	return &Observer{inst: NoopInstruments()}
}

// Instruments returns the tracer, metrics and logger for a controller.
func (o *Observer) Instruments() Instruments {
	return o.inst
}

// Shutdown flushes and stops the providers, last started first.
func (o *Observer) Shutdown(ctx context.Context) error {
	o.once.Do(func() {
		var errs []error
		for _, stop := range slices.Backward(o.shutdowns) {
			if err := stop(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		if len(errs) > 0 {
			o.shutdownErr = fmt.Errorf("observe: shutdown: %w", errors.Join(errs...))
		}
	})
	return o.shutdownErr
}

// Logger is a minimal structured logging interface.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: logging is best-effort and must not panic.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	Debug(ctx context.Context, msg string, fields ...Field)
	WithComponent(meta ComponentMeta) Logger
}

// Field is a structured log field.
type Field struct {
	Key   string
	Value any
}

type noopLogger struct{}

func (*noopLogger) Info(context.Context, string, ...Field)  {}
func (*noopLogger) Warn(context.Context, string, ...Field)  {}
func (*noopLogger) Error(context.Context, string, ...Field) {}
func (*noopLogger) Debug(context.Context, string, ...Field) {}
func (l *noopLogger) WithComponent(ComponentMeta) Logger    { return l }
