package observe

import (
	"strconv"

	"github.com/jonwraymond/keepalive/vnode"
)

// ComponentMeta describes a cached component for telemetry purposes.
type ComponentMeta struct {
	Key  string // Cache key (may be empty before resolution)
	Name string // Display name used for include/exclude filtering
	Tag  string // Component tag
	CID  string // Constructor identity token
}

// MetaOf builds metadata for v stored under key.
func MetaOf(v *vnode.VNode, key string) ComponentMeta {
	meta := ComponentMeta{Key: key, Name: v.ComponentName()}
	if v.IsComponent() {
		meta.Tag = v.ComponentOptions.Tag
		if ctor := v.ComponentOptions.Ctor; ctor != nil {
			meta.CID = strconv.FormatUint(ctor.CID, 10)
		}
	}
	return meta
}

// ComponentID returns the most specific identifier available: the key, then
// the name, then the tag.
func (m ComponentMeta) ComponentID() string {
	switch {
	case m.Key != "":
		return m.Key
	case m.Name != "":
		return m.Name
	default:
		return m.Tag
	}
}

// SpanName returns the deterministic span name for an operation.
// Format: keepalive.<op>.<name> or keepalive.<op>
func (m ComponentMeta) SpanName(op string) string {
	if m.Name != "" {
		return "keepalive." + op + "." + m.Name
	}
	return "keepalive." + op
}
