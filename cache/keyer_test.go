package cache

import (
	"errors"
	"strings"
	"testing"

	"github.com/jonwraymond/keepalive/vnode"
)

// TestDefaultKeyer_Key covers explicit and derived keys.
func TestDefaultKeyer_Key(t *testing.T) {
	ctor := &vnode.Constructor{CID: 7, Name: "Home"}

	tests := []struct {
		name string
		node *vnode.VNode
		want string
	}{
		{
			name: "explicit key verbatim",
			node: &vnode.VNode{Key: "home-1", ComponentOptions: &vnode.ComponentOptions{Ctor: ctor, Tag: "home"}},
			want: "home-1",
		},
		{
			name: "derived with tag",
			node: &vnode.VNode{ComponentOptions: &vnode.ComponentOptions{Ctor: ctor, Tag: "home"}},
			want: "7::home",
		},
		{
			name: "derived without tag",
			node: &vnode.VNode{ComponentOptions: &vnode.ComponentOptions{Ctor: ctor}},
			want: "7",
		},
		{
			name: "explicit key without component",
			node: &vnode.VNode{Key: "plain"},
			want: "plain",
		},
	}

	k := NewDefaultKeyer()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := k.Key(tc.node)
			if err != nil {
				t.Fatalf("Key failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Key() = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestDefaultKeyer_SameCtorDifferentTags verifies local registrations of one
// constructor under different tags get distinct keys.
func TestDefaultKeyer_SameCtorDifferentTags(t *testing.T) {
	ctor := &vnode.Constructor{CID: 1}
	k := NewDefaultKeyer()

	a, _ := k.Key(&vnode.VNode{ComponentOptions: &vnode.ComponentOptions{Ctor: ctor, Tag: "left"}})
	b, _ := k.Key(&vnode.VNode{ComponentOptions: &vnode.ComponentOptions{Ctor: ctor, Tag: "right"}})
	if a == b {
		t.Errorf("keys should differ, both %q", a)
	}
}

// TestDefaultKeyer_Errors verifies unusable nodes are rejected.
func TestDefaultKeyer_Errors(t *testing.T) {
	k := NewDefaultKeyer()

	if _, err := k.Key(nil); !errors.Is(err, ErrNilVNode) {
		t.Errorf("nil node error = %v, want ErrNilVNode", err)
	}
	if _, err := k.Key(&vnode.VNode{Tag: "div"}); !errors.Is(err, ErrNotComponent) {
		t.Errorf("element error = %v, want ErrNotComponent", err)
	}
	if _, err := k.Key(&vnode.VNode{ComponentOptions: &vnode.ComponentOptions{Tag: "x"}}); !errors.Is(err, ErrNotComponent) {
		t.Errorf("nil ctor error = %v, want ErrNotComponent", err)
	}
}

// TestDefaultKeyer_AuthorKeyVerbatim verifies any non-empty author key is
// used unchanged, without a constructor.
func TestDefaultKeyer_AuthorKeyVerbatim(t *testing.T) {
	k := NewDefaultKeyer()
	for _, key := range []string{"   ", "line\nbreak", "tab\there", strings.Repeat("k", 2048)} {
		got, err := k.Key(&vnode.VNode{Key: key})
		if err != nil {
			t.Errorf("Key(%q) error = %v", key, err)
			continue
		}
		if got != key {
			t.Errorf("Key(%q) = %q, want verbatim", key, got)
		}
	}
}

// TestDefaultKeyer_Deterministic verifies repeated calls agree.
func TestDefaultKeyer_Deterministic(t *testing.T) {
	k := NewDefaultKeyer()
	node := &vnode.VNode{ComponentOptions: &vnode.ComponentOptions{Ctor: &vnode.Constructor{CID: 42}, Tag: "t"}}

	first, _ := k.Key(node)
	for i := 0; i < 10; i++ {
		if got, _ := k.Key(node); got != first {
			t.Fatalf("iteration %d: key = %q, want %q", i, got, first)
		}
	}
}
