package observe

// Instruments bundles the telemetry a keep-alive controller emits.
type Instruments struct {
	Tracer  Tracer
	Metrics Metrics
	Logger  Logger
}

// NoopInstruments returns instruments that discard everything.
func NoopInstruments() Instruments {
	return Instruments{
		Tracer:  newNoopTracer(),
		Metrics: noopMetrics{},
		Logger:  &noopLogger{},
	}
}
