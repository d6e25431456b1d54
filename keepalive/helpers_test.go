package keepalive

import (
	"context"
	"testing"

	"github.com/jonwraymond/keepalive/cache"
	"github.com/jonwraymond/keepalive/vnode"
)

// instance is a live component that counts teardowns.
type instance struct {
	name      string
	destroyed int
}

func (i *instance) Destroy() {
	i.destroyed++
}

// renderer stands in for the rendering engine: it builds component nodes
// from a registry and instantiates whatever the controller returns without
// a live instance.
type renderer struct {
	t        *testing.T
	registry *vnode.Registry
	created  []*instance
}

func newRenderer(t *testing.T, ids ...string) *renderer {
	t.Helper()
	r := &renderer{t: t, registry: vnode.NewRegistry()}
	for _, id := range ids {
		if _, err := r.registry.Register(id, ""); err != nil {
			t.Fatalf("Register(%q) failed: %v", id, err)
		}
	}
	return r
}

// node builds a fresh component node for id, as a render function would.
func (r *renderer) node(id string) *vnode.VNode {
	r.t.Helper()
	v := r.registry.Component(id, id, "")
	if v == nil {
		r.t.Fatalf("unknown component %q", id)
	}
	return v
}

// pass renders id through c and commits the result.
func (r *renderer) pass(c *Controller, id string) *vnode.VNode {
	r.t.Helper()
	out := c.Render(context.Background(), []*vnode.VNode{r.node(id)})
	r.commit(out)
	return out
}

func (r *renderer) commit(v *vnode.VNode) {
	if v == nil || !v.IsComponent() || v.ComponentInstance != nil {
		return
	}
	inst := &instance{name: v.ComponentName()}
	r.created = append(r.created, inst)
	v.ComponentInstance = inst
}

func instanceOf(t *testing.T, v *vnode.VNode) *instance {
	t.Helper()
	inst, ok := v.ComponentInstance.(*instance)
	if !ok {
		t.Fatalf("node has no test instance: %T", v.ComponentInstance)
	}
	return inst
}

// keyFor returns the derived cache key for id.
func (r *renderer) keyFor(id string) string {
	r.t.Helper()
	ctor, ok := r.registry.Lookup(id)
	if !ok {
		r.t.Fatalf("unknown component %q", id)
	}
	v := &vnode.VNode{ComponentOptions: &vnode.ComponentOptions{Ctor: ctor, Tag: id}}
	key, err := cache.NewDefaultKeyer().Key(v)
	if err != nil {
		r.t.Fatalf("Key failed: %v", err)
	}
	return key
}
