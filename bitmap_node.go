package pmap

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lleo/go-persistent-map/seq"
)

// bitmapNode is the interior node of the Trie. It records which of its 32
// logical slots are populated in a 32 bit bitmap and stores the populated
// slots densely in a slice ordered from the lowest set bit to the highest,
// so the slice length always equals popcount(bitmap).
//
// To find the dense position of logical slot idx, mask off every bitmap bit
// at or above idx and count the bits that remain. A node whose bitmap would
// reach zero is never kept; the delete path returns nil instead so the
// parent can splice the slot out.
type bitmapNode struct {
	bitmap uint32
	slots  []nodeI
	owner  *owner
}

// newRootNode builds the one-leaf node installed when the first entry
// enters an empty Map.
func newRootNode(o *owner, h uint32, k, v interface{}) *bitmapNode {
	return &bitmapNode{
		bitmap: uint32(1) << index(h, 0),
		slots:  []nodeI{newLeaf(h, k, v)},
		owner:  o,
	}
}

// newBitmapNode2 builds the subtree that separates two leaves with unequal
// hashes, starting at the given shift and descending one level at a time
// until their slot indexes diverge.
func newBitmapNode2(o *owner, shift uint, l1, l2 *leaf) *bitmapNode {
	var idx1 = index(l1.hash, shift)
	var idx2 = index(l2.hash, shift)

	var n = &bitmapNode{owner: o}
	switch {
	case idx1 == idx2:
		n.bitmap = uint32(1) << idx1
		n.slots = []nodeI{newBitmapNode2(o, shift+Nbits, l1, l2)}
	case idx1 < idx2:
		n.bitmap = uint32(1)<<idx1 | uint32(1)<<idx2
		n.slots = []nodeI{l1, l2}
	default:
		n.bitmap = uint32(1)<<idx1 | uint32(1)<<idx2
		n.slots = []nodeI{l2, l1}
	}
	return n
}

// slotIdx returns the dense slice position for the given bitmap bit.
func (n *bitmapNode) slotIdx(bit uint32) int {
	return bits.OnesCount32(n.bitmap & (bit - 1))
}

// ensure returns the node itself when the owner token matches, otherwise a
// shallow copy tagged with the token.
func (n *bitmapNode) ensure(o *owner) *bitmapNode {
	if n.owner.is(o) {
		return n
	}
	var nn = &bitmapNode{
		bitmap: n.bitmap,
		slots:  make([]nodeI, len(n.slots)),
		owner:  o,
	}
	copy(nn.slots, n.slots)
	return nn
}

// insert writes a new entry into an editable node at the given bit.
func (n *bitmapNode) insert(bit uint32, e nodeI) {
	var i = n.slotIdx(bit)
	n.slots = append(n.slots, nil)
	copy(n.slots[i+1:], n.slots[i:])
	n.slots[i] = e
	n.bitmap |= bit
}

// remove clears the given bit from an editable node and closes the gap in
// the slot slice.
func (n *bitmapNode) remove(bit uint32) {
	var i = n.slotIdx(bit)
	n.slots = append(n.slots[:i], n.slots[i+1:]...)
	n.bitmap &^= bit
}

func (n *bitmapNode) get(shift uint, h uint32, k, notFound interface{}) interface{} {
	var bit = uint32(1) << index(h, shift)
	if n.bitmap&bit == 0 {
		return notFound
	}

	switch e := n.slots[n.slotIdx(bit)].(type) {
	case *leaf:
		if Is(e.key, k) {
			return e.val
		}
		return notFound
	default:
		return e.(trieNode).get(shift+Nbits, h, k, notFound)
	}
}

func (n *bitmapNode) set(o *owner, shift uint, h uint32, k, v interface{}, added *bool) trieNode {
	var bit = uint32(1) << index(h, shift)

	if n.bitmap&bit == 0 {
		*added = true
		var nn = n.ensure(o)
		nn.insert(bit, newLeaf(h, k, v))
		return nn
	}

	var i = n.slotIdx(bit)
	switch e := n.slots[i].(type) {
	case *leaf:
		if Is(e.key, k) {
			if Is(e.val, v) {
				return n
			}
			var nn = n.ensure(o)
			nn.slots[i] = newLeaf(h, k, v)
			return nn
		}

		// Two distinct keys contend for one slot: either their full
		// hashes collide, or a subtree one level down separates them.
		*added = true
		var child nodeI
		if e.hash == h {
			child = newCollisionNode(o, h, []seq.Entry{
				{Key: e.key, Val: e.val},
				{Key: k, Val: v},
			})
		} else {
			child = newBitmapNode2(o, shift+Nbits, e, newLeaf(h, k, v))
		}
		var nn = n.ensure(o)
		nn.slots[i] = child
		return nn
	default:
		var child = e.(trieNode)
		var newChild = child.set(o, shift+Nbits, h, k, v, added)
		if newChild == child {
			return n
		}
		var nn = n.ensure(o)
		nn.slots[i] = newChild
		return nn
	}
}

func (n *bitmapNode) del(o *owner, shift uint, h uint32, k interface{}, removed *bool) trieNode {
	var bit = uint32(1) << index(h, shift)
	if n.bitmap&bit == 0 {
		return n
	}

	var i = n.slotIdx(bit)
	switch e := n.slots[i].(type) {
	case *leaf:
		if !Is(e.key, k) {
			return n
		}
		*removed = true
		if n.bitmap == bit {
			return nil
		}
		var nn = n.ensure(o)
		nn.remove(bit)
		return nn
	default:
		var child = e.(trieNode)
		var newChild = child.del(o, shift+Nbits, h, k, removed)
		if newChild == child {
			return n
		}
		if newChild == nil {
			if n.bitmap == bit {
				return nil
			}
			var nn = n.ensure(o)
			nn.remove(bit)
			return nn
		}
		var nn = n.ensure(o)
		nn.slots[i] = newChild
		return nn
	}
}

func (n *bitmapNode) iterate(fn func(k, v interface{}) bool, reverse bool) bool {
	if reverse {
		for i := len(n.slots) - 1; i >= 0; i-- {
			if !n.slots[i].iterate(fn, reverse) {
				return false
			}
		}
		return true
	}
	for _, e := range n.slots {
		if !e.iterate(fn, reverse) {
			return false
		}
	}
	return true
}

func (n *bitmapNode) String() string {
	return fmt.Sprintf("bitmapNode{bitmap:%#08x, nslots:%d}", n.bitmap, len(n.slots))
}

func (n *bitmapNode) longString(indent string) string {
	var strs = make([]string, 2+len(n.slots))
	strs[0] = indent + fmt.Sprintf("bitmapNode{bitmap:%#08x,", n.bitmap)
	for i, e := range n.slots {
		strs[1+i] = e.longString(indent + fullIndent)
	}
	strs[len(strs)-1] = indent + "}"
	return strings.Join(strs, "\n")
}
