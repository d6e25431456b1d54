package keepalive

import (
	"github.com/jonwraymond/keepalive/cache"
	"github.com/jonwraymond/keepalive/match"
	"github.com/jonwraymond/keepalive/observe"
)

// Options configures the filters and bound of a Controller.
type Options struct {
	// Include limits caching to matching component names. Unset admits all.
	Include match.Pattern

	// Exclude prevents caching of matching component names.
	Exclude match.Pattern

	// Max bounds the number of cached entries. Zero or negative is unbounded.
	// Use cache.ParseMax for text input.
	Max int
}

// Option configures Controller dependencies.
type Option func(*Controller)

// WithLogger sets the logger used for warnings and cache events.
func WithLogger(l observe.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m observe.Metrics) Option {
	return func(c *Controller) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithTracer sets the tracer used for render and sweep spans.
func WithTracer(t observe.Tracer) Option {
	return func(c *Controller) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithKeyer replaces the default cache key resolution.
func WithKeyer(k cache.Keyer) Option {
	return func(c *Controller) {
		if k != nil {
			c.keyer = k
		}
	}
}

// WithInstruments sets tracer, metrics and logger together.
func WithInstruments(inst observe.Instruments) Option {
	return func(c *Controller) {
		WithTracer(inst.Tracer)(c)
		WithMetrics(inst.Metrics)(c)
		WithLogger(inst.Logger)(c)
	}
}

// WithObserver wires every instrument of obs. A nil obs keeps the no-op
// defaults.
func WithObserver(obs *observe.Observer) Option {
	return func(c *Controller) {
		if obs != nil {
			WithInstruments(obs.Instruments())(c)
		}
	}
}
