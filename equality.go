package pmap

import "reflect"

// Is reports whether a and b are the same value under the Map's notion of
// key and value equality: identity, which for Go primitives coincides with
// value equality. Two values of different dynamic types are never the same.
// Non-comparable values (slices, maps, funcs) are the same only when they
// refer to the same underlying data.
func Is(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	var ta = reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	if ta.Comparable() {
		return a == b
	}

	switch ta.Kind() {
	case reflect.Slice:
		var va, vb = reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map, reflect.Func:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}

	return false
}

// Equals reports deep map equality: both maps have the same length and
// every key in other is bound in m to a value that Is the same. Nested
// Maps compare by identity, as any other value does.
func (m *Map) Equals(other *Map) bool {
	if m == other {
		return true
	}
	if other == nil || m.length != other.length {
		return false
	}

	return other.Iterate(func(k, v interface{}) bool {
		var mine = m.getOrSentinel(k)
		if mine == sentinel {
			return false
		}
		return Is(mine, v)
	}, false)
}
