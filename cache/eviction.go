package cache

import "github.com/jonwraymond/keepalive/vnode"

// EvictOldest removes the least recently used entry, sparing its instance if
// it is protected.
func (s *Store) EvictOldest(protected string) (Removal, bool) {
	el := s.ll.Front()
	if el == nil {
		return Removal{}, false
	}
	return s.removeElement(el, protected, true), true
}

// Enforce evicts the oldest entry once if the store is over the policy bound.
// The bound is only checked here, so a store left over-bound by a lowered
// Max shrinks by at most one entry per call.
func (s *Store) Enforce(p Policy, protected string) (Removal, bool) {
	if !p.Exceeded(s.Len()) {
		return Removal{}, false
	}
	return s.EvictOldest(protected)
}

// Prune removes every entry for which keep returns false. Entries are
// visited in recency order; removal does not disturb the visit.
func (s *Store) Prune(keep func(key string, v *vnode.VNode) bool, protected string) []Removal {
	var removals []Removal
	for el := s.ll.Front(); el != nil; {
		next := el.Next()
		e := el.Value.(*storeEntry)
		if !keep(e.key, e.node) {
			removals = append(removals, s.removeElement(el, protected, true))
		}
		el = next
	}
	return removals
}
