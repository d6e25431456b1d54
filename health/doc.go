// Package health reports the health of keep-alive caches and anything else a
// host process wants to check.
//
// A Checker reports a Status: Healthy, Degraded or Unhealthy. CacheChecker
// compares a cache's entry count with its bound; a cache holding more entries
// than its bound (after the bound was lowered) is Degraded until enough
// inserts have evicted the surplus.
//
// # Aggregating
//
//	agg := health.NewAggregator()
//	agg.Register("views", health.NewCacheChecker("views", ctrl))
//
//	results := agg.CheckAll(ctx)
//	overall := agg.OverallStatus(results)
//
// Checks run concurrently, bounded by AggregatorConfig.Concurrency, and
// concurrent CheckAll calls share one run.
//
// # HTTP Endpoints
//
//	mux := http.NewServeMux()
//	health.RegisterHandlers(mux, agg) // /healthz, /readyz, /health
package health
