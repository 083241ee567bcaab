package pmap

import (
	"github.com/pkg/errors"

	"github.com/lleo/go-persistent-map/seq"
)

// MergeFn resolves a key bound in both the receiver and an incoming
// sequence; it is given the existing and the incoming value.
type MergeFn func(existing, incoming interface{}) interface{}

// Merge folds the entries of each input into the Map in argument order;
// later values win. An input may be another *Map, a seq.Seq, a []seq.Entry,
// or a Go map (map[interface{}]interface{} or map[string]interface{}).
func (m *Map) Merge(seqs ...interface{}) *Map {
	return m.mergeInto(nil, false, seqs)
}

// MergeWith is Merge, except a key bound on both sides resolves to
// fn(existing, incoming) instead of the incoming value.
func (m *Map) MergeWith(fn MergeFn, seqs ...interface{}) *Map {
	return m.mergeInto(fn, false, seqs)
}

// MergeDeep is Merge, except where the existing and incoming values are
// both map-like they are merged recursively instead of replaced.
func (m *Map) MergeDeep(seqs ...interface{}) *Map {
	return m.mergeInto(nil, true, seqs)
}

// MergeDeepWith is MergeDeep with non-map collisions resolved by fn.
func (m *Map) MergeDeepWith(fn MergeFn, seqs ...interface{}) *Map {
	return m.mergeInto(fn, true, seqs)
}

func (m *Map) mergeInto(fn MergeFn, deep bool, seqs []interface{}) *Map {
	if len(seqs) == 0 {
		return m
	}

	return m.WithMutations(func(t *Map) {
		for _, s := range seqs {
			forEachEntry(s, func(k, v interface{}) bool {
				var existing = t.getOrSentinel(k)
				if existing == sentinel {
					t.Set(k, v)
					return true
				}
				if deep {
					var em, eok = asMap(existing)
					var im, iok = asMap(v)
					if eok && iok {
						t.Set(k, em.mergeInto(fn, true, []interface{}{im}))
						return true
					}
				}
				if fn != nil {
					t.Set(k, fn(existing, v))
					return true
				}
				t.Set(k, v)
				return true
			})
		}
	})
}

// asMap reports whether v is map-like and adapts it to a *Map. Go map
// values adapt by conversion; *Map values adapt by identity.
func asMap(v interface{}) (*Map, bool) {
	switch v := v.(type) {
	case *Map:
		return v, true
	case map[interface{}]interface{}, map[string]interface{}:
		return From(v), true
	}
	return nil, false
}

// forEachEntry walks the key/value pairs of any merge input.
func forEachEntry(s interface{}, fn func(k, v interface{}) bool) {
	switch s := s.(type) {
	case *Map:
		s.Iterate(fn, false)
	case seq.Seq:
		s.ForEach(fn)
	case []seq.Entry:
		seq.FromEntries(s).ForEach(fn)
	case map[interface{}]interface{}:
		for k, v := range s {
			if !fn(k, v) {
				return
			}
		}
	case map[string]interface{}:
		for k, v := range s {
			if !fn(k, v) {
				return
			}
		}
	default:
		panic(errors.Errorf("pmap: cannot merge value of type %T", s))
	}
}
