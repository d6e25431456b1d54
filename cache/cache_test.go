package cache

import "testing"

// TestSentinelErrors verifies sentinel errors have expected messages.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"ErrNilVNode", ErrNilVNode, "cache: vnode is nil"},
		{"ErrNotComponent", ErrNotComponent, "cache: vnode has no component constructor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("%s.Error() = %q, want %q", tt.name, got, tt.wantMsg)
			}
		})
	}
}
