package pmap

// AsMutable returns a transient handle that edits nodes in place under a
// fresh owner token. A persistent receiver is left untouched and a clone is
// returned; a receiver that is already transient is returned as is.
func (m *Map) AsMutable() *Map {
	if m.owner != nil {
		return m
	}
	return &Map{length: m.length, root: m.root, owner: newOwner()}
}

// AsImmutable freezes a transient handle by dropping its owner token and
// returns it, or the empty Map when the transient holds no entries; a
// persistent receiver is returned as is. Interior nodes keep
// the stale token on their owner field, but tokens are never reused, so
// every later operation through the facade copies before editing.
func (m *Map) AsImmutable() *Map {
	if m.owner == nil {
		return m
	}
	m.owner = nil
	if m.length == 0 {
		return emptyMap
	}
	return m
}

// WithMutations runs fn against a transient view of the Map and returns the
// frozen result, or the receiver itself when the batch changed nothing. On
// an already-transient receiver the batch nests: the inner scope gets a
// distinct owner token and the receiver's own token is restored on return.
//
// If fn panics, partial edits are not rolled back.
func (m *Map) WithMutations(fn func(t *Map)) *Map {
	if m.owner != nil {
		var outer = m.owner
		m.owner = newOwner()
		fn(m)
		m.owner = outer
		return m
	}

	var t = m.AsMutable()
	fn(t)
	if t.root == m.root && t.length == m.length {
		return m
	}
	return t.AsImmutable()
}
