// Package vnode defines the slice of a virtual render tree that the
// keep-alive cache consumes.
//
// The rendering engine owns VNode construction, instantiation and commit.
// This package only describes the shape the cache reads (key, constructor
// identity, tag, live instance) and the flag it writes back (KeepAlive), plus
// a small constructor Registry that mints stable identity tokens.
package vnode
