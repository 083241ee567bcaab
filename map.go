package pmap

import (
	"fmt"

	"github.com/lleo/go-persistent-map/seq"
)

const fullIndent = "    "

// Map is a persistent key/value map. The zero-length Map is a package
// singleton obtained from Empty; all operations on a persistent Map return
// either the receiver itself (when nothing changed) or a new Map sharing
// structure with the receiver. A Map returned by AsMutable is transient and
// is edited in place until frozen with AsImmutable.
//
// Keys may be nil-free booleans, numbers, strings, or any type implementing
// Hasher; key equality is Is. A nil key never occupies the Trie: Set and
// Delete with a nil key are no-ops and Get returns the default.
type Map struct {
	length int
	root   trieNode
	owner  *owner
}

var emptyMap = new(Map)

// Empty returns the canonical empty Map.
func Empty() *Map {
	return emptyMap
}

// From constructs a Map from v: nil yields the empty Map, a *Map is
// returned as is, and anything Merge accepts (a Go map, a seq.Seq, or a
// []seq.Entry) is merged into the empty Map.
func From(v interface{}) *Map {
	switch v := v.(type) {
	case nil:
		return emptyMap
	case *Map:
		return v
	default:
		return emptyMap.Merge(v)
	}
}

// Len returns the number of entries in the Map.
func (m *Map) Len() int {
	return m.length
}

// IsEmpty reports whether the Map has no entries.
func (m *Map) IsEmpty() bool {
	return m.length == 0
}

// sentinel is the private absent marker; it is distinct from every
// legitimate value a caller can store.
type sentinelType struct{}

var sentinel interface{} = new(sentinelType)

func (m *Map) getOrSentinel(k interface{}) interface{} {
	if k == nil || m.root == nil {
		return sentinel
	}
	return m.root.get(0, Hash(k), k, sentinel)
}

// Get returns the value bound to k and whether k is present.
func (m *Map) Get(k interface{}) (interface{}, bool) {
	var v = m.getOrSentinel(k)
	if v == sentinel {
		return nil, false
	}
	return v, true
}

// GetOr returns the value bound to k, or notFound when k is absent or nil.
func (m *Map) GetOr(k, notFound interface{}) interface{} {
	var v = m.getOrSentinel(k)
	if v == sentinel {
		return notFound
	}
	return v
}

// Has reports whether k is present.
func (m *Map) Has(k interface{}) bool {
	return m.getOrSentinel(k) != sentinel
}

// Set returns a Map with k bound to v. Setting a value that Is the current
// binding returns the receiver itself. A nil key is a silent no-op.
func (m *Map) Set(k, v interface{}) *Map {
	if k == nil {
		return m
	}

	var h = Hash(k)
	var added bool
	var newRoot trieNode
	if m.root == nil {
		newRoot = newRootNode(m.owner, h, k, v)
		added = true
	} else {
		newRoot = m.root.set(m.owner, 0, h, k, v, &added)
	}

	if m.owner != nil {
		m.root = newRoot
		if added {
			m.length++
		}
		return m
	}

	if newRoot == m.root {
		return m
	}
	var nm = &Map{length: m.length, root: newRoot}
	if added {
		nm.length++
	}
	return nm
}

// Delete returns a Map without k. Deleting an absent key returns the
// receiver itself; deleting the last entry returns the empty Map.
func (m *Map) Delete(k interface{}) *Map {
	if k == nil || m.root == nil {
		return m
	}

	var removed bool
	var newRoot = m.root.del(m.owner, 0, Hash(k), k, &removed)

	if m.owner != nil {
		m.root = newRoot
		if removed {
			m.length--
		}
		return m
	}

	if !removed {
		return m
	}
	if newRoot == nil {
		return emptyMap
	}
	return &Map{length: m.length - 1, root: newRoot}
}

// Update binds k to fn applied to the current value (nil when absent).
func (m *Map) Update(k interface{}, fn func(v interface{}) interface{}) *Map {
	return m.Set(k, fn(m.GetOr(k, nil)))
}

// Clear returns the empty Map; a transient Map is cleared in place.
func (m *Map) Clear() *Map {
	if m.owner != nil {
		m.root = nil
		m.length = 0
		return m
	}
	return emptyMap
}

// Iterate walks the entries in slot order, ascending or descending by slot
// index. It stops early when fn returns false and reports whether the walk
// ran to completion. The order is deterministic for a given Trie shape but
// unrelated to insertion order or key values.
func (m *Map) Iterate(fn func(k, v interface{}) bool, reverse bool) bool {
	if m.root == nil {
		return true
	}
	return m.root.iterate(fn, reverse)
}

// Keys returns a snapshot of the keys in iteration order.
func (m *Map) Keys() []interface{} {
	var ks = make([]interface{}, 0, m.length)
	m.Iterate(func(k, v interface{}) bool {
		ks = append(ks, k)
		return true
	}, false)
	return ks
}

// Values returns a snapshot of the values in iteration order.
func (m *Map) Values() []interface{} {
	var vs = make([]interface{}, 0, m.length)
	m.Iterate(func(k, v interface{}) bool {
		vs = append(vs, v)
		return true
	}, false)
	return vs
}

// Entries returns a snapshot of the entries in iteration order.
func (m *Map) Entries() []seq.Entry {
	var ents = make([]seq.Entry, 0, m.length)
	m.Iterate(func(k, v interface{}) bool {
		ents = append(ents, seq.Entry{Key: k, Val: v})
		return true
	}, false)
	return ents
}

func (m *Map) String() string {
	return fmt.Sprintf("Map{ length: %d, root: %s }", m.length, nodeString(m.root))
}

// LongString renders the whole Trie, one node per line, for debugging.
func (m *Map) LongString(indent string) string {
	if m.root == nil {
		return indent + fmt.Sprintf("Map{ length: %d, root: nil }", m.length)
	}
	var str = indent + fmt.Sprintf("Map{ length: %d, root:\n", m.length)
	str += m.root.longString(indent+fullIndent) + "\n"
	str += indent + "}"
	return str
}

func nodeString(n trieNode) string {
	if n == nil {
		return "nil"
	}
	return n.String()
}
