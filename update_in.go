package pmap

import "github.com/pkg/errors"

// ErrInvalidKeyPath is the cause of the panic raised when UpdateIn descends
// into a value that is not map-like at an interior path position. Use
// errors.Cause to test for it.
var ErrInvalidKeyPath = errors.New("updateIn with invalid keyPath")

// UpdateIn applies fn to the value at the nested key path and returns a Map
// with the result written back along the path. Missing interior keys are
// created as empty Maps and a missing terminal key is presented to fn as
// nil; an interior value that is present but not map-like
// panics with an error caused by ErrInvalidKeyPath. With an empty path fn
// is applied to the Map itself and must return a map-like value.
func (m *Map) UpdateIn(path []interface{}, fn func(v interface{}) interface{}) *Map {
	var res = deepUpdate(m, path, fn)
	var nm, ok = asMap(res)
	if !ok {
		panic(errors.Wrapf(ErrInvalidKeyPath, "result type %T", res))
	}
	return nm
}

func deepUpdate(v interface{}, path []interface{}, fn func(v interface{}) interface{}) interface{} {
	if len(path) == 0 {
		return fn(v)
	}

	var m, ok = asMap(v)
	if !ok {
		panic(errors.Wrapf(ErrInvalidKeyPath, "value type %T at interior position", v))
	}

	var k = path[0]
	var nested = m.getOrSentinel(k)
	if nested == sentinel {
		// An absent interior step becomes an empty map to descend into;
		// at the terminal step fn sees the absence itself, as nil.
		if len(path) == 1 {
			nested = nil
		} else {
			nested = Empty()
		}
	}
	return m.Set(k, deepUpdate(nested, path[1:], fn))
}
