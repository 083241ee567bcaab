package pmap

import (
	"fmt"
	"strings"

	"github.com/lleo/go-persistent-map/seq"
)

// collisionNode holds every entry whose full 32 bit hash equals hash. The
// entries are kept in a flat list searched linearly; all keys are distinct
// under Is. Deletion never converts the node back to a plain leaf, so a
// collision node may hold a single entry after deletes.
type collisionNode struct {
	hash  uint32
	kvs   []seq.Entry
	owner *owner
}

func newCollisionNode(o *owner, h uint32, kvs []seq.Entry) *collisionNode {
	var n = &collisionNode{hash: h, owner: o}
	n.kvs = append(n.kvs, kvs...)
	return n
}

// ensure returns the node itself when the owner token matches, otherwise a
// shallow copy tagged with the token.
func (n *collisionNode) ensure(o *owner) *collisionNode {
	if n.owner.is(o) {
		return n
	}
	var nn = &collisionNode{hash: n.hash, owner: o}
	nn.kvs = append(nn.kvs, n.kvs...)
	return nn
}

func (n *collisionNode) get(shift uint, h uint32, k, notFound interface{}) interface{} {
	var i = seq.IndexOf(n.kvs, k, Is)
	if i < 0 {
		return notFound
	}
	return n.kvs[i].Val
}

func (n *collisionNode) set(o *owner, shift uint, h uint32, k, v interface{}, added *bool) trieNode {
	if h != n.hash {
		// This node sits one level down of a bitmap slot whose path the
		// new hash shares only up to shift. Wrap it in a bitmap node and
		// let the new pair find its own slot.
		var wrapper = &bitmapNode{
			bitmap: uint32(1) << index(n.hash, shift),
			slots:  []nodeI{n},
			owner:  o,
		}
		return wrapper.set(o, shift, h, k, v, added)
	}

	var i = seq.IndexOf(n.kvs, k, Is)
	if i >= 0 {
		if Is(n.kvs[i].Val, v) {
			return n
		}
		var nn = n.ensure(o)
		nn.kvs[i] = seq.Entry{Key: nn.kvs[i].Key, Val: v}
		return nn
	}

	*added = true
	var nn = n.ensure(o)
	nn.kvs = append(nn.kvs, seq.Entry{Key: k, Val: v})
	return nn
}

func (n *collisionNode) del(o *owner, shift uint, h uint32, k interface{}, removed *bool) trieNode {
	var i = seq.IndexOf(n.kvs, k, Is)
	if i < 0 {
		return n
	}

	*removed = true
	if len(n.kvs) == 1 {
		return nil
	}

	// remove by swap-with-last
	var nn = n.ensure(o)
	nn.kvs[i] = nn.kvs[len(nn.kvs)-1]
	nn.kvs = nn.kvs[:len(nn.kvs)-1]
	return nn
}

func (n *collisionNode) iterate(fn func(k, v interface{}) bool, reverse bool) bool {
	if reverse {
		for i := len(n.kvs) - 1; i >= 0; i-- {
			if !fn(n.kvs[i].Key, n.kvs[i].Val) {
				return false
			}
		}
		return true
	}
	for _, kv := range n.kvs {
		if !fn(kv.Key, kv.Val) {
			return false
		}
	}
	return true
}

func (n *collisionNode) String() string {
	var kvstrs = make([]string, len(n.kvs))
	for i, kv := range n.kvs {
		kvstrs[i] = fmt.Sprintf("{%v,%v}", kv.Key, kv.Val)
	}
	return fmt.Sprintf("collisionNode{hash:%#08x, kvs:[%s]}",
		n.hash, strings.Join(kvstrs, ","))
}

func (n *collisionNode) longString(indent string) string {
	return indent + n.String()
}
