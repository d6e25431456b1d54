package cache

import (
	"container/list"

	"github.com/jonwraymond/keepalive/vnode"
)

// Store maps cache keys to rendered nodes and tracks recency.
//
// A single ordered container backs both the lookup and the recency order, so
// every key reachable by Get is also in Keys and vice versa. The front of the
// list is the least recently used entry.
//
// Contract:
// - Concurrency: not safe for concurrent use. Callers serialize access.
// - Ownership: the store owns the live instance of every stored node until
//   the node is removed.
type Store struct {
	ll      *list.List
	entries map[string]*list.Element
}

type storeEntry struct {
	key  string
	node *vnode.VNode
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		ll:      list.New(),
		entries: make(map[string]*list.Element),
	}
}

// Get returns the node stored under key. It does not change recency.
func (s *Store) Get(key string) (*vnode.VNode, bool) {
	el, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	return el.Value.(*storeEntry).node, true
}

// Add stores v under key and makes it the most recently used entry.
// An existing entry under key is replaced without teardown.
func (s *Store) Add(key string, v *vnode.VNode) {
	if el, ok := s.entries[key]; ok {
		el.Value.(*storeEntry).node = v
		s.ll.MoveToBack(el)
		return
	}
	s.entries[key] = s.ll.PushBack(&storeEntry{key: key, node: v})
}

// Touch makes key the most recently used entry.
// Returns false if key is not stored.
func (s *Store) Touch(key string) bool {
	el, ok := s.entries[key]
	if !ok {
		return false
	}
	s.ll.MoveToBack(el)
	return true
}

// Remove forgets key and destroys its live instance unless key equals
// protected. The key is forgotten even when teardown is skipped.
func (s *Store) Remove(key, protected string) (Removal, bool) {
	el, ok := s.entries[key]
	if !ok {
		return Removal{}, false
	}
	return s.removeElement(el, protected, true), true
}

// Oldest returns the least recently used key.
func (s *Store) Oldest() (string, bool) {
	el := s.ll.Front()
	if el == nil {
		return "", false
	}
	return el.Value.(*storeEntry).key, true
}

// Keys returns the stored keys from least to most recently used.
func (s *Store) Keys() []string {
	keys := make([]string, 0, s.ll.Len())
	for el := s.ll.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*storeEntry).key)
	}
	return keys
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return s.ll.Len()
}

// Purge destroys every entry and empties the store. No entry is protected.
func (s *Store) Purge() []Removal {
	removals := make([]Removal, 0, s.ll.Len())
	for el := s.ll.Front(); el != nil; {
		next := el.Next()
		removals = append(removals, s.removeElement(el, "", false))
		el = next
	}
	return removals
}

func (s *Store) removeElement(el *list.Element, protected string, guarded bool) Removal {
	e := el.Value.(*storeEntry)
	r := Removal{Key: e.key, VNode: e.node}

	if !guarded || e.key != protected {
		if e.node != nil && e.node.ComponentInstance != nil {
			e.node.ComponentInstance.Destroy()
			r.Destroyed = true
		}
	}

	s.ll.Remove(el)
	delete(s.entries, e.key)
	return r
}
