package health

import (
	"context"
	"fmt"
)

// CacheStats is the view of a keep-alive cache a CacheChecker needs.
// *keepalive.Controller satisfies it.
//
// Contract:
// - Concurrency: both methods are called from health-check goroutines while the
//   cache keeps rendering, so they must be safe for concurrent use.
type CacheStats interface {
	// Len returns the number of cached entries.
	Len() int
	// Max returns the entry bound, or 0 when unbounded.
	Max() int
}

// CacheChecker reports whether a keep-alive cache is within its bound.
//
// The bound is enforced one eviction per insert, so a cache whose bound was
// lowered can hold more entries than Max until enough new components are
// rendered. The checker reports that state as Degraded.
type CacheChecker struct {
	name  string
	stats CacheStats
}

// NewCacheChecker creates a checker for stats. An empty name defaults to
// "keepalive".
func NewCacheChecker(name string, stats CacheStats) *CacheChecker {
	if name == "" {
		name = "keepalive"
	}
	return &CacheChecker{name: name, stats: stats}
}

// Name returns the checker name.
func (c *CacheChecker) Name() string {
	return c.name
}

// Check compares the entry count with the bound.
func (c *CacheChecker) Check(ctx context.Context) Result {
	if err := ctx.Err(); err != nil {
		return Unhealthy("context cancelled", err)
	}
	if c.stats == nil {
		return Unhealthy("no cache attached", ErrCheckFailed)
	}

	n, bound := c.stats.Len(), c.stats.Max()
	details := map[string]any{
		"entries": n,
		"max":     bound,
	}

	if bound <= 0 {
		return Healthy(fmt.Sprintf("%d entries, unbounded", n)).WithDetails(details)
	}

	details["utilization_percent"] = float64(n) / float64(bound) * 100
	if n > bound {
		return Degraded(fmt.Sprintf("%d entries exceed bound %d", n, bound)).WithDetails(details)
	}
	return Healthy(fmt.Sprintf("%d of %d entries", n, bound)).WithDetails(details)
}

var _ Checker = (*CacheChecker)(nil)
