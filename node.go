package pmap

// Nbits is the number of hash bits consumed per Trie level.
const Nbits uint = 5

// TableCapacity is the branching factor of the Trie; 1<<Nbits == 32.
const TableCapacity uint = 1 << Nbits

// nodeI is the interface for every entry in a bitmapNode's slot array; a
// slot is either a *leaf or a trieNode (bitmapNode or collisionNode).
type nodeI interface {
	iterate(fn func(k, v interface{}) bool, reverse bool) bool
	String() string
	longString(indent string) string
}

// trieNode is the edit protocol shared by the two interior node kinds.
//
// set returns the receiver itself when the write changed nothing, an
// in-place edited node when the owner token matches, or a path-copied node
// otherwise; it sets *added when a new leaf entered the Trie.
//
// del returns the receiver when the key is absent and nil when the node
// lost its last entry, signaling the parent to splice the slot out; it sets
// *removed when a leaf left the Trie.
type trieNode interface {
	nodeI
	get(shift uint, h uint32, k, notFound interface{}) interface{}
	set(o *owner, shift uint, h uint32, k, v interface{}, added *bool) trieNode
	del(o *owner, shift uint, h uint32, k interface{}, removed *bool) trieNode
}

// index returns the 5 bit slot index for hash h at the given shift.
func index(h uint32, shift uint) uint {
	return uint(h>>shift) & (TableCapacity - 1)
}
