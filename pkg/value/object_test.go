package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectEntriesPreservesInsertionOrder(t *testing.T) {
	o := NewObject(Undefined)
	require.NoError(t, Set(o, rawString("b"), Number(2)))
	require.NoError(t, Set(o, rawString("a"), Number(1)))
	require.NoError(t, Set(o, rawString("b"), Number(20))) // overwrite, shouldn't move position

	obj, _ := AsObject(o)
	entries := obj.Entries()
	require.Len(t, entries, 2)
	bKey, _ := entries[0].Key.AsString()
	require.Equal(t, "b", bKey)
	bVal, _ := entries[0].Value.AsNumber()
	require.Equal(t, float64(20), bVal)
	aKey, _ := entries[1].Key.AsString()
	require.Equal(t, "a", aKey)
}

func TestObjectUserDataIsOpaque(t *testing.T) {
	o := NewObject(Undefined)
	obj, _ := AsObject(o)
	type marker struct{ n int }
	obj.SetUserData(&marker{n: 5})
	got, ok := obj.UserData().(*marker)
	require.True(t, ok)
	require.Equal(t, 5, got.n)
}

func TestArbitraryValueKeys(t *testing.T) {
	o := NewObject(Undefined)
	keyObj := NewObject(Undefined)
	require.NoError(t, Set(o, keyObj, rawString("value-for-object-key")))
	v, err := Get(o, keyObj)
	require.NoError(t, err)
	s, _ := v.AsString()
	require.Equal(t, "value-for-object-key", s)

	otherObj := NewObject(Undefined)
	v2, err := Get(o, otherObj)
	require.NoError(t, err)
	require.Equal(t, KindUndefined, v2.Kind(), "a distinct Object handle is a distinct key")
}

func TestArrayLockSemanticsDoNotApplyToArrays(t *testing.T) {
	a := NewArray(Number(1))
	arr, ok := AsArray(a)
	require.True(t, ok)
	require.Equal(t, 1, arr.Len())
	arr.SetAt(0, Number(99))
	n, _ := arr.At(0).AsNumber()
	require.Equal(t, float64(99), n)
}
