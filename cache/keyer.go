package cache

import (
	"strconv"

	"github.com/jonwraymond/keepalive/vnode"
)

// TagSeparator joins the constructor identity and the component tag in
// derived keys.
const TagSeparator = "::"

// Keyer resolves the cache key for a rendered component node.
//
// Contract:
// - Determinism: the same node shape must always produce the same key.
// - Concurrency: implementations must be safe for concurrent use.
type Keyer interface {
	Key(v *vnode.VNode) (string, error)
}

// DefaultKeyer uses the author key when present, otherwise the constructor
// identity plus the tag.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a new default keyer.
func NewDefaultKeyer() *DefaultKeyer {
	return &DefaultKeyer{}
}

// Key resolves the cache key.
// Format: <key> or <cid> or <cid>::<tag>
//
// The tag is part of a derived key because one constructor may be registered
// locally under several tags.
func (k *DefaultKeyer) Key(v *vnode.VNode) (string, error) {
	if v == nil {
		return "", ErrNilVNode
	}
	if v.Key != "" {
		return v.Key, nil
	}
	if v.ComponentOptions == nil || v.ComponentOptions.Ctor == nil {
		return "", ErrNotComponent
	}

	key := strconv.FormatUint(v.ComponentOptions.Ctor.CID, 10)
	if tag := v.ComponentOptions.Tag; tag != "" {
		key += TagSeparator + tag
	}
	return key, nil
}

// Ensure DefaultKeyer implements Keyer
var _ Keyer = (*DefaultKeyer)(nil)
