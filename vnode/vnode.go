package vnode

// Instance is a live, instantiated component.
//
// Contract:
// - Destroy releases every resource the component holds. It is destructive
//   and is called at most once by the cache for a given stored entry.
type Instance interface {
	Destroy()
}

// DestroyFunc adapts an ordinary function to Instance.
type DestroyFunc func()

// Destroy calls f.
func (f DestroyFunc) Destroy() {
	f()
}

// Constructor identifies a component definition.
type Constructor struct {
	// CID is the identity token, unique within the Registry that minted it.
	CID uint64

	// Name is the component's declared name. May be empty.
	Name string
}

// ComponentOptions carries what a component VNode was created from.
type ComponentOptions struct {
	Ctor *Constructor

	// Tag is the tag the component was referenced by in the parent template.
	// The same constructor may be registered locally under several tags.
	Tag string
}

// VNode is a rendered subtree node.
type VNode struct {
	// Tag is the element or component tag.
	Tag string

	// Key is the author-supplied key. Empty means no key.
	Key string

	// ComponentOptions is non-nil for component-bearing nodes.
	ComponentOptions *ComponentOptions

	// ComponentInstance is the live instance once the renderer created it.
	ComponentInstance Instance

	// KeepAlive marks the node as cache-managed: the lifecycle system must
	// not destroy its instance on unmount.
	KeepAlive bool

	// IsComment marks placeholder comment nodes.
	IsComment bool

	// AsyncFactory is set on placeholders for components still resolving.
	AsyncFactory any
}

// IsComponent reports whether v carries component options.
func (v *VNode) IsComponent() bool {
	return v != nil && v.ComponentOptions != nil
}

// IsAsyncPlaceholder reports whether v stands in for an async component.
func (v *VNode) IsAsyncPlaceholder() bool {
	return v != nil && v.IsComment && v.AsyncFactory != nil
}

// ComponentName returns the constructor's declared name, falling back to the
// component tag. Returns "" for non-component nodes.
func (v *VNode) ComponentName() string {
	if !v.IsComponent() {
		return ""
	}
	opts := v.ComponentOptions
	if opts.Ctor != nil && opts.Ctor.Name != "" {
		return opts.Ctor.Name
	}
	return opts.Tag
}

// ComponentChildren returns the children eligible for keep-alive: non-nil
// nodes that are component-bearing or async placeholders, in order.
func ComponentChildren(children []*VNode) []*VNode {
	var out []*VNode
	for _, c := range children {
		if c.IsComponent() || c.IsAsyncPlaceholder() {
			out = append(out, c)
		}
	}
	return out
}

// FirstComponentChild returns the first eligible child, or nil.
func FirstComponentChild(children []*VNode) *VNode {
	for _, c := range children {
		if c.IsComponent() || c.IsAsyncPlaceholder() {
			return c
		}
	}
	return nil
}
