package health

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// AggregatorConfig configures an Aggregator.
type AggregatorConfig struct {
	// Timeout bounds a full CheckAll run. Default: 10 seconds.
	Timeout time.Duration

	// Concurrency caps the checks run at once. Zero or negative runs every
	// check at once; 1 runs them sequentially.
	Concurrency int
}

// DefaultAggregatorConfig returns the default configuration.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{Timeout: 10 * time.Second}
}

// Aggregator combines named checkers into one composite check.
//
// Contract:
// - Concurrency: safe for concurrent use. Concurrent CheckAll calls share a
//   single run of the checkers.
type Aggregator struct {
	config AggregatorConfig

	mu       sync.RWMutex
	checkers map[string]Checker
	order    []string

	flight singleflight.Group
}

// NewAggregator creates an aggregator. Missing fields of config take their
// defaults.
func NewAggregator(config ...AggregatorConfig) *Aggregator {
	cfg := DefaultAggregatorConfig()
	if len(config) > 0 {
		cfg.Concurrency = config[0].Concurrency
		if config[0].Timeout > 0 {
			cfg.Timeout = config[0].Timeout
		}
	}
	return &Aggregator{
		config:   cfg,
		checkers: make(map[string]Checker),
	}
}

// Register adds or replaces the checker stored under name.
func (a *Aggregator) Register(name string, checker Checker) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.checkers[name]; !exists {
		a.order = append(a.order, name)
	}
	a.checkers[name] = checker
}

// Unregister removes the checker stored under name.
func (a *Aggregator) Unregister(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.checkers, name)
	a.order = slices.DeleteFunc(a.order, func(n string) bool { return n == name })
}

// CheckerNames returns registered names in registration order.
func (a *Aggregator) CheckerNames() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return slices.Clone(a.order)
}

// Check runs the checker registered under name.
func (a *Aggregator) Check(ctx context.Context, name string) (Result, error) {
	a.mu.RLock()
	checker, ok := a.checkers[name]
	a.mu.RUnlock()

	if !ok {
		return Result{}, ErrCheckerNotFound
	}
	return runCheck(ctx, checker), nil
}

// CheckAll runs every registered checker and returns results by name.
//
// Concurrent callers share one run. The run is detached from the caller's
// cancellation and bounded by the aggregator's own timeout; a caller whose
// ctx ends first gets timeout results while the run continues for the rest.
func (a *Aggregator) CheckAll(ctx context.Context) map[string]Result {
	ch := a.flight.DoChan("all", func() (any, error) {
		return a.checkAll(context.WithoutCancel(ctx)), nil
	})

	select {
	case res := <-ch:
		return maps.Clone(res.Val.(map[string]Result))
	case <-ctx.Done():
		return a.timedOut(time.Now())
	}
}

// timedOut reports every registered checker as timed out.
func (a *Aggregator) timedOut(start time.Time) map[string]Result {
	a.mu.RLock()
	defer a.mu.RUnlock()

	results := make(map[string]Result, len(a.checkers))
	for name := range a.checkers {
		r := Unhealthy("check timed out", ErrCheckTimeout)
		r.Timestamp = start
		results[name] = r
	}
	return results
}

func (a *Aggregator) checkAll(ctx context.Context) map[string]Result {
	a.mu.RLock()
	checkers := maps.Clone(a.checkers)
	a.mu.RUnlock()

	results := make(map[string]Result, len(checkers))
	if len(checkers) == 0 {
		return results
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	if a.config.Concurrency > 0 {
		g.SetLimit(a.config.Concurrency)
	}
	for name, checker := range checkers {
		g.Go(func() error {
			result := runCheck(ctx, checker)
			mu.Lock()
			results[name] = result
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // checks report failure through their Result

	return results
}

// OverallStatus returns the most severe status in results. No results is
// healthy.
func (a *Aggregator) OverallStatus(results map[string]Result) Status {
	status := StatusHealthy
	for _, r := range results {
		status = status.worse(r.Status)
	}
	return status
}

// runCheck runs checker, giving up with ErrCheckTimeout when ctx ends first.
func runCheck(ctx context.Context, checker Checker) Result {
	start := time.Now()
	done := make(chan Result, 1)

	go func() {
		r := checker.Check(ctx)
		if r.Timestamp.IsZero() {
			r.Timestamp = start
		}
		done <- r
	}()

	select {
	case r := <-done:
		r.Duration = time.Since(start)
		return r
	case <-ctx.Done():
		r := Unhealthy("check timed out", ErrCheckTimeout)
		r.Duration = time.Since(start)
		r.Timestamp = start
		return r
	}
}

// Checker exposes the aggregator as a single checker named "aggregate".
func (a *Aggregator) Checker() Checker {
	return NewCheckerFunc("aggregate", func(ctx context.Context) Result {
		results := a.CheckAll(ctx)
		status := a.OverallStatus(results)

		details := make(map[string]any, len(results))
		for name, r := range results {
			details[name] = map[string]any{
				"status":   r.Status.String(),
				"message":  r.Message,
				"duration": r.Duration.String(),
			}
		}

		r := Result{Status: status, Details: details, Timestamp: time.Now()}
		switch status {
		case StatusHealthy:
			r.Message = "all checks passed"
		case StatusDegraded:
			r.Message = "some checks degraded"
		default:
			r.Message = "some checks failed"
		}
		return r
	})
}
