/*
Package cursor provides localized views onto a subtree of a persistent map.
A Cursor pins a key path into a Map; reads dereference the path and writes
go through the Map's nested update, producing a new Map and firing the
cursor's change callback when anything actually changed.
*/
package cursor

import pmap "github.com/lleo/go-persistent-map"

// OnChange is invoked after a cursor write that produced a different Map,
// with the new Map, the Map the write was applied to, and the cursor path.
type OnChange func(newMap, oldMap *pmap.Map, path []interface{})

// Cursor is an immutable view onto the value at a key path. Writes return
// a new Cursor over the updated Map; the receiver keeps seeing the old one.
type Cursor struct {
	m        *pmap.Map
	path     []interface{}
	onChange OnChange
}

// New builds a cursor over m at the given path. onChange may be nil.
func New(m *pmap.Map, path []interface{}, onChange OnChange) *Cursor {
	return &Cursor{m: m, path: path, onChange: onChange}
}

// Map returns the Map the cursor currently views.
func (c *Cursor) Map() *pmap.Map {
	return c.m
}

// Path returns the cursor's key path.
func (c *Cursor) Path() []interface{} {
	return c.path
}

// Deref returns the value at the cursor path, or nil when any step of the
// path is absent or not map-like.
func (c *Cursor) Deref() interface{} {
	var v interface{} = c.m
	for _, k := range c.path {
		var m, ok = v.(*pmap.Map)
		if !ok {
			return nil
		}
		v = m.GetOr(k, nil)
	}
	return v
}

// Get returns the value bound to k inside the map at the cursor path.
func (c *Cursor) Get(k interface{}) (interface{}, bool) {
	var m, ok = c.Deref().(*pmap.Map)
	if !ok {
		return nil, false
	}
	return m.Get(k)
}

// Update applies fn to the value at the cursor path and returns a cursor
// over the resulting Map. The change callback fires only when the update
// produced a different Map.
func (c *Cursor) Update(fn func(v interface{}) interface{}) *Cursor {
	var newMap = c.m.UpdateIn(c.path, fn)
	if newMap == c.m {
		return c
	}
	if c.onChange != nil {
		c.onChange(newMap, c.m, c.path)
	}
	return &Cursor{m: newMap, path: c.path, onChange: c.onChange}
}

// Set binds k to v inside the map at the cursor path.
func (c *Cursor) Set(k, v interface{}) *Cursor {
	return c.Update(func(cur interface{}) interface{} {
		return mapAt(cur).Set(k, v)
	})
}

// Delete removes k from the map at the cursor path.
func (c *Cursor) Delete(k interface{}) *Cursor {
	return c.Update(func(cur interface{}) interface{} {
		return mapAt(cur).Delete(k)
	})
}

// Cursor returns a sub-cursor whose path extends the receiver's, sharing
// the same backing Map and change callback.
func (c *Cursor) Cursor(ks ...interface{}) *Cursor {
	var path = make([]interface{}, 0, len(c.path)+len(ks))
	path = append(path, c.path...)
	path = append(path, ks...)
	return &Cursor{m: c.m, path: path, onChange: c.onChange}
}

func mapAt(v interface{}) *pmap.Map {
	if m, ok := v.(*pmap.Map); ok {
		return m
	}
	return pmap.Empty()
}
