package keepalive

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"

	"github.com/jonwraymond/keepalive/cache"
	"github.com/jonwraymond/keepalive/match"
	"github.com/jonwraymond/keepalive/observe"
	"github.com/jonwraymond/keepalive/vnode"
)

// Outcome is the result of one render pass.
type Outcome string

const (
	// OutcomeNoCandidate means there was no single component child to cache.
	OutcomeNoCandidate Outcome = "none"
	// OutcomeFiltered means the child was rejected by include or exclude.
	OutcomeFiltered Outcome = "filtered"
	// OutcomeHit means the cached instance was reused.
	OutcomeHit Outcome = "hit"
	// OutcomeMiss means the child was stored.
	OutcomeMiss Outcome = "miss"
	// OutcomeEvicted means the child was stored and the oldest entry evicted.
	OutcomeEvicted Outcome = "evicted"
)

// Controller caches the component child of one parent scope.
//
// Contract:
// - Concurrency: not safe for concurrent use; render passes are serialized.
//   Len and Max are the exception and may be read from any goroutine.
// - Ownership: the controller's store owns every cached live instance until
//   eviction, a filter sweep, or Destroy.
// - Errors: Render never fails; problems degrade to an uncached pass and are
//   logged as warnings.
type Controller struct {
	include match.Pattern
	exclude match.Pattern
	policy  cache.Policy

	store *cache.Store
	keyer cache.Keyer

	// committed is the key of the node returned by the last cached pass. It
	// is the protected key for evictions and sweeps.
	committed string
	last      Outcome

	// entries and bound mirror Len and Max for readers on other goroutines.
	entries atomic.Int64
	bound   atomic.Int64

	logger  observe.Logger
	metrics observe.Metrics
	tracer  observe.Tracer
}

// New creates a controller with an empty store.
func New(opts Options, options ...Option) *Controller {
	noop := observe.NoopInstruments()
	c := &Controller{
		include: opts.Include,
		exclude: opts.Exclude,
		policy:  cache.Policy{Max: opts.Max},
		store:   cache.NewStore(),
		keyer:   cache.NewDefaultKeyer(),
		last:    OutcomeNoCandidate,
		logger:  noop.Logger,
		metrics: noop.Metrics,
		tracer:  noop.Tracer,
	}
	c.bound.Store(int64(boundOf(c.policy)))
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Render runs one render pass over the scope's children and returns the node
// to commit. The returned node has KeepAlive set when the cache manages it.
func (c *Controller) Render(ctx context.Context, children []*vnode.VNode) *vnode.VNode {
	candidates := vnode.ComponentChildren(children)

	switch {
	case len(candidates) == 0:
		c.pass(ctx, observe.ComponentMeta{}, OutcomeNoCandidate)
		if len(children) > 0 {
			return children[0]
		}
		return nil

	case len(candidates) > 1:
		c.logger.Warn(ctx, "keep-alive expects exactly one component child, caching skipped",
			observe.Field{Key: "candidates", Value: len(candidates)},
		)
		c.pass(ctx, observe.ComponentMeta{}, OutcomeNoCandidate)
		return candidates[0]
	}

	v := candidates[0]
	if !v.IsComponent() {
		// async placeholder still resolving
		c.pass(ctx, observe.ComponentMeta{}, OutcomeNoCandidate)
		return v
	}

	meta := observe.MetaOf(v, "")
	ctx, span := c.tracer.StartSpan(ctx, "render", meta)

	if !c.admits(meta.Name) {
		c.logger.WithComponent(meta).Debug(ctx, "component filtered")
		c.pass(ctx, meta, OutcomeFiltered)
		span.SetAttributes(attribute.String("keepalive.outcome", string(OutcomeFiltered)))
		c.tracer.EndSpan(span, nil)
		return v
	}

	key, err := c.keyer.Key(v)
	if err != nil {
		c.logger.WithComponent(meta).Warn(ctx, "cache key unresolved, caching skipped",
			observe.Field{Key: "error", Value: err.Error()},
		)
		c.pass(ctx, meta, OutcomeNoCandidate)
		c.tracer.EndSpan(span, err)
		return v
	}
	meta.Key = key

	outcome := c.lookup(ctx, key, v)
	c.entries.Store(int64(c.store.Len()))
	v.KeepAlive = true
	c.committed = key

	c.logger.WithComponent(meta).Debug(ctx, "render pass cached",
		observe.Field{Key: "outcome", Value: string(outcome)},
		observe.Field{Key: "entries", Value: c.store.Len()},
	)
	c.last = outcome
	c.metrics.RecordRender(ctx, meta, string(outcome), outcome == OutcomeMiss || outcome == OutcomeEvicted)
	span.SetAttributes(attribute.String("keepalive.outcome", string(outcome)))
	c.tracer.EndSpan(span, nil)
	return v
}

// lookup reuses the cached instance for key or stores v.
func (c *Controller) lookup(ctx context.Context, key string, v *vnode.VNode) Outcome {
	if cached, ok := c.store.Get(key); ok {
		v.ComponentInstance = cached.ComponentInstance
		c.store.Touch(key)
		return OutcomeHit
	}

	c.store.Add(key, v)
	if r, ok := c.store.Enforce(c.policy, c.committed); ok {
		c.removed(ctx, r, cache.ReasonCapacity)
		return OutcomeEvicted
	}
	return OutcomeMiss
}

// pass records an uncached render pass. The committed output is no longer a
// cached entry, so nothing stays protected.
func (c *Controller) pass(ctx context.Context, meta observe.ComponentMeta, outcome Outcome) {
	c.committed = ""
	c.last = outcome
	c.metrics.RecordRender(ctx, meta, string(outcome), false)
}

// admits reports whether a component name passes the filters. Nameless
// components are always admitted.
func (c *Controller) admits(name string) bool {
	if name == "" {
		return true
	}
	if c.include.IsSet() && !match.Matches(c.include, name) {
		return false
	}
	if c.exclude.IsSet() && match.Matches(c.exclude, name) {
		return false
	}
	return true
}

func (c *Controller) removed(ctx context.Context, r cache.Removal, reason cache.Reason) {
	meta := observe.MetaOf(r.VNode, r.Key)
	c.metrics.RecordRemoval(ctx, meta, string(reason), r.Destroyed)
	c.logger.WithComponent(meta).Debug(ctx, "cache entry removed",
		observe.Field{Key: "reason", Value: string(reason)},
		observe.Field{Key: "destroyed", Value: r.Destroyed},
	)
}

// Len returns the number of cached entries. Safe for concurrent use.
func (c *Controller) Len() int {
	return int(c.entries.Load())
}

// Max returns the entry bound, or 0 when unbounded. Safe for concurrent use.
func (c *Controller) Max() int {
	return int(c.bound.Load())
}

func boundOf(p cache.Policy) int {
	if !p.Bounded() {
		return 0
	}
	return p.Max
}

// Keys returns the cached keys from least to most recently used.
func (c *Controller) Keys() []string {
	return c.store.Keys()
}

// Include returns the current include filter.
func (c *Controller) Include() match.Pattern {
	return c.include
}

// Exclude returns the current exclude filter.
func (c *Controller) Exclude() match.Pattern {
	return c.exclude
}

// LastOutcome returns the outcome of the most recent render pass.
func (c *Controller) LastOutcome() Outcome {
	return c.last
}
