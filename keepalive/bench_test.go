package keepalive

import (
	"context"
	"fmt"
	"testing"

	"github.com/jonwraymond/keepalive/vnode"
)

func BenchmarkController_RenderHit(b *testing.B) {
	reg := vnode.NewRegistry()
	if _, err := reg.Register("Home", ""); err != nil {
		b.Fatal(err)
	}
	c := New(Options{})
	ctx := context.Background()
	first := c.Render(ctx, []*vnode.VNode{reg.Component("Home", "Home", "")})
	first.ComponentInstance = &instance{}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Render(ctx, []*vnode.VNode{reg.Component("Home", "Home", "")})
	}
}

func BenchmarkController_RenderEvict(b *testing.B) {
	reg := vnode.NewRegistry()
	ids := make([]string, 64)
	for i := range ids {
		ids[i] = fmt.Sprintf("Page%d", i)
		if _, err := reg.Register(ids[i], ""); err != nil {
			b.Fatal(err)
		}
	}
	c := New(Options{Max: 8})
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := ids[i%len(ids)]
		out := c.Render(ctx, []*vnode.VNode{reg.Component(id, id, "")})
		if out.ComponentInstance == nil {
			out.ComponentInstance = &instance{name: id}
		}
	}
}
