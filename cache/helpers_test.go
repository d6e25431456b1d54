package cache

import (
	"strconv"

	"github.com/jonwraymond/keepalive/vnode"
)

// countingInstance records Destroy calls.
type countingInstance struct {
	destroyed int
}

func (c *countingInstance) Destroy() {
	c.destroyed++
}

// newNode builds a component node with a live counting instance.
func newNode(cid uint64, name string) (*vnode.VNode, *countingInstance) {
	inst := &countingInstance{}
	return &vnode.VNode{
		ComponentOptions: &vnode.ComponentOptions{
			Ctor: &vnode.Constructor{CID: cid, Name: name},
			Tag:  name,
		},
		ComponentInstance: inst,
	}, inst
}

func keyOf(i int) string {
	return "k" + strconv.Itoa(i)
}
