package cache

import (
	"errors"

	"github.com/jonwraymond/keepalive/vnode"
)

// Sentinel errors for cache operations.
var (
	ErrNilVNode     = errors.New("cache: vnode is nil")
	ErrNotComponent = errors.New("cache: vnode has no component constructor")
)

// Reason records why an entry left the store.
type Reason string

const (
	ReasonCapacity Reason = "capacity"
	ReasonInclude  Reason = "include"
	ReasonExclude  Reason = "exclude"
	ReasonTeardown Reason = "teardown"
)

// Removal describes one entry leaving the store.
type Removal struct {
	Key   string
	VNode *vnode.VNode

	// Destroyed is false when the entry was protected or had no live instance.
	Destroyed bool
}
