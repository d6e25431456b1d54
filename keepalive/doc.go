// Package keepalive caches rendered component subtrees so that components
// toggled out of and back into a render tree keep their state.
//
// A Controller sits between a parent scope and its single dynamic child. On
// every render pass it picks the one component child, decides from the
// include and exclude filters whether the child is cacheable, and either
// reuses the cached live instance (hit) or stores the new node (miss). When a
// size bound is set, the least recently used entry is evicted and torn down.
//
// # Basic Usage
//
//	ctrl := keepalive.New(keepalive.Options{
//	    Include: match.Delimited("Home,Settings"),
//	    Max:     cache.ParseMax("10"),
//	})
//	defer ctrl.Destroy(ctx)
//
//	out := ctrl.Render(ctx, children)
//	// out.KeepAlive is true when the cache manages out's instance.
//
// # Concurrency
//
// A Controller is not safe for concurrent use. The rendering engine must
// finish one Render before starting the next, which is the natural order of
// render passes for a single scope.
package keepalive
