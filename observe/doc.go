// Package observe provides the logging, tracing and metrics of keep-alive
// controllers.
//
// NewObserver turns a Config into Instruments. Each signal is enabled by
// naming its exporter (or log level); the zero Config yields no-op
// instruments. Providers are owned by the Observer and never installed as
// OpenTelemetry globals, and every resource carries the controller scope:
//
//	obs, err := observe.NewObserver(ctx, observe.Config{
//	    Scope:           "settings-view",
//	    TraceExporter:   "otlp",
//	    MetricsExporter: "prometheus",
//	    LogLevel:        "info",
//	})
//	if err != nil {
//	    return err
//	}
//	defer obs.Shutdown(ctx)
//
//	ctrl := keepalive.New(opts, keepalive.WithObserver(obs))
package observe
