package cursor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	pmap "github.com/lleo/go-persistent-map"
	"github.com/lleo/go-persistent-map/cursor"
)

func TestDeref(t *testing.T) {
	var inner = pmap.Empty().Set("n", 1)
	var m = pmap.Empty().Set("a", inner)

	var c = cursor.New(m, []interface{}{"a"}, nil)
	require.Equal(t, inner, c.Deref())

	var leafCur = cursor.New(m, []interface{}{"a", "n"}, nil)
	require.Equal(t, 1, leafCur.Deref())

	var absent = cursor.New(m, []interface{}{"a", "missing"}, nil)
	require.Nil(t, absent.Deref())

	var past = cursor.New(m, []interface{}{"a", "n", "deeper"}, nil)
	require.Nil(t, past.Deref())
}

func TestGet(t *testing.T) {
	var m = pmap.Empty().Set("a", pmap.Empty().Set("n", 1))
	var c = cursor.New(m, []interface{}{"a"}, nil)

	var v, found = c.Get("n")
	require.True(t, found)
	require.Equal(t, 1, v)

	_, found = c.Get("missing")
	require.False(t, found)
}

func TestUpdateFiresOnChange(t *testing.T) {
	var m = pmap.Empty().Set("a", pmap.Empty().Set("n", 1))

	var calls int
	var gotPath []interface{}
	var gotOld, gotNew *pmap.Map
	var onChange = func(newMap, oldMap *pmap.Map, path []interface{}) {
		calls++
		gotNew, gotOld, gotPath = newMap, oldMap, path
	}

	var c = cursor.New(m, []interface{}{"a", "n"}, onChange)
	var c2 = c.Update(func(v interface{}) interface{} {
		return v.(int) + 1
	})

	require.Equal(t, 1, calls)
	require.Equal(t, m, gotOld)
	require.Equal(t, []interface{}{"a", "n"}, gotPath)
	require.Equal(t, 2, c2.Deref())
	require.Equal(t, gotNew, c2.Map())

	// the original cursor still sees the old map
	require.Equal(t, 1, c.Deref())
}

func TestUpdateNoOpSkipsOnChange(t *testing.T) {
	var m = pmap.Empty().Set("a", pmap.Empty().Set("n", 1))

	var calls int
	var c = cursor.New(m, []interface{}{"a", "n"}, func(_, _ *pmap.Map, _ []interface{}) {
		calls++
	})

	var c2 = c.Update(func(v interface{}) interface{} { return v })
	require.Equal(t, 0, calls)
	require.Equal(t, c, c2)
}

func TestSetAndDelete(t *testing.T) {
	var m = pmap.Empty().Set("a", pmap.Empty().Set("x", 1))
	var c = cursor.New(m, []interface{}{"a"}, nil)

	var c2 = c.Set("y", 2)
	var a = c2.Deref().(*pmap.Map)
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, a.GetOr("y", nil))

	var c3 = c2.Delete("x")
	a = c3.Deref().(*pmap.Map)
	require.Equal(t, 1, a.Len())
	require.False(t, a.Has("x"))
}

func TestSetCreatesMissingPath(t *testing.T) {
	var c = cursor.New(pmap.Empty(), []interface{}{"a", "b"}, nil)

	var c2 = c.Set("k", "v")
	var nested = c2.Deref().(*pmap.Map)
	require.Equal(t, "v", nested.GetOr("k", nil))
}

func TestSubCursor(t *testing.T) {
	var m = pmap.Empty().Set("a", pmap.Empty().Set("b", pmap.Empty().Set("n", 1)))

	var calls int
	var root = cursor.New(m, nil, func(_, _ *pmap.Map, _ []interface{}) { calls++ })
	var sub = root.Cursor("a", "b")

	require.Equal(t, []interface{}{"a", "b"}, sub.Path())
	require.Equal(t, 1, sub.Deref().(*pmap.Map).GetOr("n", nil))

	var sub2 = sub.Update(func(v interface{}) interface{} {
		return v.(*pmap.Map).Set("n", 2)
	})
	require.Equal(t, 1, calls)
	require.Equal(t, 2, sub2.Deref().(*pmap.Map).GetOr("n", nil))
}
