package value

import (
	"math"
	"testing"
)

func TestSingletonsCompareEqual(t *testing.T) {
	if !StrictEquals(Undefined, Value{kind: KindUndefined}) {
		t.Fatal("Undefined copies should compare equal")
	}
	if !StrictEquals(Null, Null) || !StrictEquals(True, True) || !StrictEquals(False, False) {
		t.Fatal("singleton self-equality failed")
	}
	if StrictEquals(True, False) {
		t.Fatal("True and False must not compare equal")
	}
}

func TestTruthiness(t *testing.T) {
	falsy := []Value{Undefined, Null, False, Number(math.NaN())}
	for _, v := range falsy {
		if v.IsTruthy() {
			t.Fatalf("%v should be falsy", v)
		}
	}
	truthy := []Value{True, Number(0), Number(-1), rawString(""), NewArray(), NewObject(Undefined)}
	for _, v := range truthy {
		if !v.IsTruthy() {
			t.Fatalf("%v should be truthy", v)
		}
	}
}

func TestToIntegerTruncatesTowardZero(t *testing.T) {
	cases := map[float64]int64{1.9: 1, -1.9: -1, 0.4: 0, -0.4: 0}
	for in, want := range cases {
		got, err := ToInteger(Number(in))
		if err != nil {
			t.Fatalf("ToInteger(%v): %v", in, err)
		}
		if got != want {
			t.Fatalf("ToInteger(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestToIntegerViaNumberMetamethod(t *testing.T) {
	o := newTestObject(Undefined)
	obj, _ := AsObject(o)
	obj.ownSet(rawString("__number"), NewNativeFunction("__number", func(state Host, args []Value) (Value, error) {
		return Number(42), nil
	}))
	n, err := ToInteger(o)
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatalf("got %d, want 42", n)
	}
}

func TestToIntegerWrongVariantFails(t *testing.T) {
	if _, err := ToInteger(rawString("x")); err == nil {
		t.Fatal("expected error converting String to integer")
	}
}
