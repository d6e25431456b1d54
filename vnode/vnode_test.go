package vnode

import "testing"

// TestVNode_ComponentName verifies name resolution falls back to the tag.
func TestVNode_ComponentName(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{"nil node", nil, ""},
		{"plain element", &VNode{Tag: "div"}, ""},
		{
			name: "constructor name",
			node: &VNode{ComponentOptions: &ComponentOptions{Ctor: &Constructor{Name: "Home"}, Tag: "home-view"}},
			want: "Home",
		},
		{
			name: "tag fallback",
			node: &VNode{ComponentOptions: &ComponentOptions{Ctor: &Constructor{}, Tag: "home-view"}},
			want: "home-view",
		},
		{
			name: "nil constructor",
			node: &VNode{ComponentOptions: &ComponentOptions{Tag: "x"}},
			want: "x",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.node.ComponentName(); got != tc.want {
				t.Errorf("ComponentName() = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestComponentChildren verifies eligible children are selected in order.
func TestComponentChildren(t *testing.T) {
	a := &VNode{ComponentOptions: &ComponentOptions{Tag: "a"}}
	async := &VNode{IsComment: true, AsyncFactory: struct{}{}}
	comment := &VNode{IsComment: true}
	text := &VNode{Tag: "span"}
	b := &VNode{ComponentOptions: &ComponentOptions{Tag: "b"}}

	got := ComponentChildren([]*VNode{nil, text, a, comment, async, b})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0] != a || got[1] != async || got[2] != b {
		t.Errorf("unexpected order: %v", got)
	}

	if first := FirstComponentChild([]*VNode{text, comment, b, a}); first != b {
		t.Errorf("FirstComponentChild = %v, want b", first)
	}
	if first := FirstComponentChild([]*VNode{text}); first != nil {
		t.Errorf("FirstComponentChild = %v, want nil", first)
	}
	if got := ComponentChildren(nil); len(got) != 0 {
		t.Errorf("ComponentChildren(nil) = %v, want empty", got)
	}
}

func TestDestroyFunc(t *testing.T) {
	calls := 0
	var inst Instance = DestroyFunc(func() { calls++ })
	inst.Destroy()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
