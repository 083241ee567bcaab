/*
Package seq provides the entry-sequence abstraction the persistent map
composes with: an ordered stream of key/value Entry pairs that can be
iterated, adapted from Go values, and searched linearly.
*/
package seq

// Entry is a single key/value pair.
type Entry struct {
	Key interface{}
	Val interface{}
}

// Seq is an ordered sequence of key/value pairs. ForEach walks the pairs in
// source order and stops early when fn returns false; it reports whether
// the walk ran to completion.
type Seq interface {
	ForEach(fn func(k, v interface{}) bool) bool
}

type entrySeq []Entry

func (s entrySeq) ForEach(fn func(k, v interface{}) bool) bool {
	for _, e := range s {
		if !fn(e.Key, e.Val) {
			return false
		}
	}
	return true
}

// FromEntries adapts a slice of Entry pairs into a Seq over the same pairs
// in slice order.
func FromEntries(ents []Entry) Seq {
	return entrySeq(ents)
}

// FromMap adapts a Go map into a Seq. The iteration order is whatever the
// runtime gives; callers must not rely on it.
func FromMap(m map[interface{}]interface{}) Seq {
	var ents = make([]Entry, 0, len(m))
	for k, v := range m {
		ents = append(ents, Entry{Key: k, Val: v})
	}
	return entrySeq(ents)
}

// IndexOf returns the position of the first entry whose key is the same as
// k under the given equality, or -1 when no entry matches.
func IndexOf(ents []Entry, k interface{}, same func(a, b interface{}) bool) int {
	for i := range ents {
		if same(ents[i].Key, k) {
			return i
		}
	}
	return -1
}

// Reduce folds fn over the sequence in source order, starting from init.
func Reduce(s Seq, init interface{}, fn func(acc, k, v interface{}) interface{}) interface{} {
	var acc = init
	s.ForEach(func(k, v interface{}) bool {
		acc = fn(acc, k, v)
		return true
	})
	return acc
}

// Filter returns a Seq holding the pairs for which keep returned true, in
// source order.
func Filter(s Seq, keep func(k, v interface{}) bool) Seq {
	var ents []Entry
	s.ForEach(func(k, v interface{}) bool {
		if keep(k, v) {
			ents = append(ents, Entry{Key: k, Val: v})
		}
		return true
	})
	return entrySeq(ents)
}
