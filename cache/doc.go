// Package cache provides the bounded store behind keep-alive rendering.
//
// It provides a Store keyed by component identity with least-recently-used
// ordering, a Keyer that derives cache keys from rendered nodes, and a
// size-bound Policy. Removing an entry tears down its live instance unless
// the caller names that entry as protected.
package cache
