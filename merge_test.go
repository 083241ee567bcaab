package pmap_test

import (
	"testing"

	pmap "github.com/lleo/go-persistent-map"
	"github.com/lleo/go-persistent-map/seq"
)

func TestMergeLastWins(t *testing.T) {
	var m = pmap.Empty().
		Merge(map[string]interface{}{"a": 1, "b": 2}).
		Merge(map[string]interface{}{"b": 3, "c": 4})

	if m.Len() != 3 {
		t.Fatalf("m.Len() = %d, want 3", m.Len())
	}
	for k, want := range map[string]int{"a": 1, "b": 3, "c": 4} {
		if v := m.GetOr(k, nil); v != want {
			t.Fatalf("m.Get(%q) = %v, want %d", k, v, want)
		}
	}
}

func TestMergeArgumentOrder(t *testing.T) {
	var m = pmap.Empty().Merge(
		map[string]interface{}{"k": "first"},
		map[string]interface{}{"k": "second"},
		map[string]interface{}{"k": "third"},
	)

	if v := m.GetOr("k", nil); v != "third" {
		t.Fatalf("m.Get(\"k\") = %v, want third", v)
	}
}

func TestMergeOtherMap(t *testing.T) {
	var m1 = pmap.Empty().Set("a", 1).Set("b", 2)
	var m2 = pmap.Empty().Set("b", 9).Set("c", 3)

	var m = m1.Merge(m2)
	if m.Len() != 3 {
		t.Fatalf("m.Len() = %d, want 3", m.Len())
	}
	if v := m.GetOr("b", nil); v != 9 {
		t.Fatalf("m.Get(\"b\") = %v, want 9", v)
	}
}

func TestMergeNoArgsIsNoOp(t *testing.T) {
	var m = pmap.Empty().Set("a", 1)
	if m.Merge() != m {
		t.Fatal("Merge() did not return the receiver")
	}
}

func TestMergeWith(t *testing.T) {
	var sum = func(existing, incoming interface{}) interface{} {
		return existing.(int) + incoming.(int)
	}

	var m = pmap.Empty().Set("a", 1).Set("b", 2).
		MergeWith(sum, map[string]interface{}{"b": 10, "c": 100})

	for k, want := range map[string]int{"a": 1, "b": 12, "c": 100} {
		if v := m.GetOr(k, nil); v != want {
			t.Fatalf("m.Get(%q) = %v, want %d", k, v, want)
		}
	}
}

func TestMergeDeep(t *testing.T) {
	var m = pmap.Empty().
		MergeDeep(map[string]interface{}{
			"a": map[string]interface{}{"x": 1},
		}).
		MergeDeep(map[string]interface{}{
			"a": map[string]interface{}{"y": 2},
		})

	var a, ok = m.GetOr("a", nil).(*pmap.Map)
	if !ok {
		t.Fatalf("a is %T, want *pmap.Map", m.GetOr("a", nil))
	}
	if a.Len() != 2 || a.GetOr("x", nil) != 1 || a.GetOr("y", nil) != 2 {
		t.Fatalf("a = %s", a)
	}
}

func TestMergeDeepReplacesNonMapLeaves(t *testing.T) {
	var m = pmap.Empty().Set("a", 1).
		MergeDeep(map[string]interface{}{"a": 2})

	if v := m.GetOr("a", nil); v != 2 {
		t.Fatalf("m.Get(\"a\") = %v, want 2", v)
	}

	// a map on one side only is a replacement, not a recursive merge
	var inner = pmap.Empty().Set("x", 1)
	var m2 = pmap.Empty().Set("a", 7).MergeDeep(map[string]interface{}{"a": inner})
	if m2.GetOr("a", nil) != inner {
		t.Fatal("non-map existing value was not replaced by the incoming map")
	}
}

func TestMergeDeepWith(t *testing.T) {
	var sum = func(existing, incoming interface{}) interface{} {
		return existing.(int) + incoming.(int)
	}

	var m = pmap.Empty().
		MergeDeep(map[string]interface{}{
			"a": map[string]interface{}{"n": 1},
		}).
		MergeDeepWith(sum, map[string]interface{}{
			"a": map[string]interface{}{"n": 10},
		})

	var a = m.GetOr("a", nil).(*pmap.Map)
	if v := a.GetOr("n", nil); v != 11 {
		t.Fatalf("a.n = %v, want 11", v)
	}
}

func TestMergeSeqInputs(t *testing.T) {
	var ents = []seq.Entry{
		{Key: "a", Val: 1},
		{Key: "b", Val: 2},
		{Key: "a", Val: 3}, // later occurrence wins
	}

	var m = pmap.Empty().Merge(ents)
	if m.Len() != 2 {
		t.Fatalf("m.Len() = %d, want 2", m.Len())
	}
	if v := m.GetOr("a", nil); v != 3 {
		t.Fatalf("m.Get(\"a\") = %v, want 3", v)
	}

	var m2 = pmap.Empty().Merge(seq.FromEntries(ents))
	if !m.Equals(m2) {
		t.Fatal("Seq and []Entry inputs disagree")
	}
}

func TestMergeUnsupportedInputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("merging an int did not panic")
		}
	}()
	pmap.Empty().Merge(42)
}
