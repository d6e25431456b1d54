package keepalive

import (
	"context"

	"github.com/jonwraymond/keepalive/cache"
	"github.com/jonwraymond/keepalive/match"
	"github.com/jonwraymond/keepalive/observe"
	"github.com/jonwraymond/keepalive/vnode"
)

// SetInclude replaces the include filter. When the value changes, every
// cached entry whose name does not match the new value is removed. An unset
// pattern matches nothing, so clearing the filter removes every named entry.
// Returns the number of entries removed.
func (c *Controller) SetInclude(ctx context.Context, p match.Pattern) int {
	if c.include.Equal(p) {
		return 0
	}
	c.include = p
	return c.sweep(ctx, cache.ReasonInclude, func(name string) bool {
		return match.Matches(p, name)
	})
}

// SetExclude replaces the exclude filter. When the value changes, every
// cached entry whose name now matches is removed. Clearing the filter removes
// nothing. Returns the number of entries removed.
func (c *Controller) SetExclude(ctx context.Context, p match.Pattern) int {
	if c.exclude.Equal(p) {
		return 0
	}
	c.exclude = p
	return c.sweep(ctx, cache.ReasonExclude, func(name string) bool {
		return !match.Matches(p, name)
	})
}

// SetMax replaces the entry bound. It does not trim the store: the bound is
// enforced on the next insert, one eviction at a time.
func (c *Controller) SetMax(ctx context.Context, n int) {
	c.policy.Max = n
	c.bound.Store(int64(boundOf(c.policy)))
	c.logger.Debug(ctx, "cache bound changed",
		observe.Field{Key: "max", Value: c.Max()},
		observe.Field{Key: "entries", Value: c.store.Len()},
	)
}

// Destroy tears down every cached instance and empties the store. It is
// called when the controller's own scope is destroyed and is idempotent.
// Returns the number of entries removed.
func (c *Controller) Destroy(ctx context.Context) int {
	ctx, span := c.tracer.StartSpan(ctx, "teardown", observe.ComponentMeta{})
	defer c.tracer.EndSpan(span, nil)

	removals := c.store.Purge()
	for _, r := range removals {
		c.removed(ctx, r, cache.ReasonTeardown)
	}
	c.committed = ""
	c.entries.Store(0)

	if len(removals) > 0 {
		c.logger.Info(ctx, "cache torn down",
			observe.Field{Key: "removed", Value: len(removals)},
		)
	}
	return len(removals)
}

// sweep removes every named entry for which keep returns false. The entry
// committed by the last pass is forgotten without teardown.
func (c *Controller) sweep(ctx context.Context, reason cache.Reason, keep func(name string) bool) int {
	ctx, span := c.tracer.StartSpan(ctx, "prune", observe.ComponentMeta{})
	defer c.tracer.EndSpan(span, nil)

	removals := c.store.Prune(func(_ string, v *vnode.VNode) bool {
		name := v.ComponentName()
		return name == "" || keep(name)
	}, c.committed)

	for _, r := range removals {
		c.removed(ctx, r, reason)
		if r.Key == c.committed {
			c.committed = ""
		}
	}
	c.entries.Store(int64(c.store.Len()))

	c.logger.Info(ctx, "cache swept",
		observe.Field{Key: "reason", Value: string(reason)},
		observe.Field{Key: "removed", Value: len(removals)},
		observe.Field{Key: "entries", Value: c.store.Len()},
	)
	return len(removals)
}
