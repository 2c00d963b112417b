package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Scenario 1: prototype read-through with auto-bind.
func TestPrototypeReadThroughAutoBinds(t *testing.T) {
	p := newTestObject(Undefined)
	pObj, _ := AsObject(p)
	greet := NewInstanceNativeFunction("greet", func(state Host, receiver Value, args []Value) (Value, error) {
		name, err := Get(receiver, rawString("name"))
		require.NoError(t, err)
		return name, nil
	})
	pObj.ownSet(rawString("greet"), greet)
	pObj.Lock()

	o := newTestObject(p)
	oObj, _ := AsObject(o)
	oObj.ownSet(rawString("name"), rawString("x"))

	bound, err := Get(o, rawString("greet"))
	require.NoError(t, err)

	boundClosure, ok := AsClosure(bound)
	require.True(t, ok)
	originalClosure, _ := AsClosure(greet)
	require.NotSame(t, originalClosure, boundClosure, "Get must return a freshly bound Function, not the prototype's handle")

	h := testHost{}
	result, err := h.Call(bound, nil)
	require.NoError(t, err)
	s, _ := result.AsString()
	require.Equal(t, "x", s)
}

// Scenario 2: the locked wall.
func TestLockedWallShadowsInstead(t *testing.T) {
	p := newTestObject(Undefined)
	pObj, _ := AsObject(p)
	pObj.ownSet(rawString("a"), Number(1))
	pObj.Lock()

	o := newTestObject(p)

	require.NoError(t, Set(o, rawString("a"), Number(2)))

	oObj, _ := AsObject(o)
	v, found := oObj.ownGet(rawString("a"))
	require.True(t, found)
	n, _ := v.AsNumber()
	require.Equal(t, float64(2), n)

	pv, err := Get(p, rawString("a"))
	require.NoError(t, err)
	pn, _ := pv.AsNumber()
	require.Equal(t, float64(1), pn, "the prototype's own field must be untouched")
}

// Scenario 5: a chain of 101 objects must raise CircularPrototype.
func TestPrototypeCycleCapIsEnforced(t *testing.T) {
	var chain [101]Value
	for i := range chain {
		chain[i] = NewObject(Undefined)
	}
	for i := 0; i < len(chain)-1; i++ {
		require.NoError(t, SetPrototypeOf(chain[i], chain[i+1]))
	}

	_, err := Get(chain[0], rawString("missing"))
	require.Error(t, err)
	rerr, ok := err.(*Error)
	require.True(t, ok)
	require.Equal(t, CircularPrototype, rerr.Code)
}

func TestSetOnLockedObjectFails(t *testing.T) {
	o := NewObject(Undefined)
	require.NoError(t, Set(o, rawString("k"), Number(1)))
	obj, _ := AsObject(o)
	obj.Lock()
	err := Set(o, rawString("k"), Number(2))
	require.Error(t, err)
	require.Equal(t, ObjectIsLocked, err.(*Error).Code)
}

func TestSetThenGetRoundTrips(t *testing.T) {
	o := NewObject(Undefined)
	require.NoError(t, Set(o, rawString("k"), Number(7)))
	v, err := Get(o, rawString("k"))
	require.NoError(t, err)
	n, _ := v.AsNumber()
	require.Equal(t, float64(7), n)
	ok, err := Contains(rawString("k"), o)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestArrayIndexingWraparoundAndBounds(t *testing.T) {
	a := NewArray(Number(10), Number(20), Number(30))
	v, err := Get(a, Number(-1))
	require.NoError(t, err)
	n, _ := v.AsNumber()
	require.Equal(t, float64(30), n)

	_, err = Get(a, Number(3))
	require.Error(t, err)
	require.Equal(t, IndexOutOfBounds, err.(*Error).Code)
}

func TestGetOfMissingKeyIsNotAnError(t *testing.T) {
	o := NewObject(Undefined)
	v, err := Get(o, rawString("nope"))
	require.NoError(t, err)
	require.Equal(t, KindUndefined, v.Kind())
}

func TestCantCreateFieldOnNonObject(t *testing.T) {
	err := Set(Number(1), rawString("k"), Number(2))
	require.Error(t, err)
	require.Equal(t, CantCreateField, err.(*Error).Code)
}
