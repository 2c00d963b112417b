// Package value implements the tagged universal value and metaobject
// dispatch core shared by every higher-level subsystem of the
// runtime: the compiler, the bytecode executor, and the standard
// library all operate in terms of the Value defined here.
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the discriminant of a Value's variants: nine kinds, with
// True and False as two distinct kinds.
type Kind uint8

const (
	KindUndefined Kind = iota
	KindNull
	KindTrue
	KindFalse
	KindNumber
	KindString
	KindObject
	KindArray
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindTrue, KindFalse:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Value is the discriminated union over Undefined, Null, True, False,
// Number, String, Object, Array and Function. It is cheap to copy:
// Object/Array/Function values are shared handles into heap records
// held in ref.
type Value struct {
	kind Kind
	num  float64
	str  string
	ref  any
}

// The four singletons. Any copy of one of these compares equal; there
// is exactly one canonical instance of each.
var (
	Undefined = Value{kind: KindUndefined}
	Null      = Value{kind: KindNull}
	True      = Value{kind: KindTrue}
	False     = Value{kind: KindFalse}
)

// Kind reports v's variant.
func (v Value) Kind() Kind { return v.kind }

// Bool returns True or False.
func Bool(b bool) Value {
	if b {
		return True
	}
	return False
}

// Number constructs a Number value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// rawString builds a String value without the host-contract nil
// check NewString performs; used internally wherever a Go string is
// already known to exist (stringification results, map keys, etc).
func rawString(s string) Value { return Value{kind: KindString, str: s} }

// AsNumber returns the float64 payload of a Number value.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// AsString returns the Go string payload of a String value.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// IsTruthy implements spec §4.2: Undefined, Null, False, and numeric
// NaN are false; everything else is true.
func (v Value) IsTruthy() bool {
	switch v.kind {
	case KindUndefined, KindNull, KindFalse:
		return false
	case KindNumber:
		return !math.IsNaN(v.num)
	default:
		return true
	}
}

// IsFalsy is the complement of IsTruthy.
func (v Value) IsFalsy() bool { return !v.IsTruthy() }

func (v Value) isNullish() bool { return v.kind == KindUndefined || v.kind == KindNull }

// ToInteger implements spec §4.2's Number/Object integer coercion:
// Number truncates toward zero; Object routes through the __number
// metamethod via Metadispatch. Any other variant is a type error.
func ToInteger(v Value) (int64, error) {
	switch v.kind {
	case KindNumber:
		return int64(math.Trunc(v.num)), nil
	case KindObject:
		result, ok, err := TryDispatch(v, "__number", nil)
		if err != nil {
			return 0, err
		}
		if !ok || result.kind != KindNumber {
			return 0, &Error{Code: CantUseOperatorOnTypes, Msg: "value has no __number metamethod"}
		}
		return int64(math.Trunc(result.num)), nil
	default:
		return 0, &Error{Code: CantUseOperatorOnTypes, Msg: "cannot convert " + v.kind.String() + " to integer"}
	}
}

// hashKey is the internal map key used by Object's own-property
// storage. It is distinct from the script-visible Hash function: it
// never calls a metamethod, because it must be usable while walking
// an object's own fields (calling into a metamethod there would be
// the indexer's job, not the storage layer's).
func hashKey(v Value) string {
	switch v.kind {
	case KindUndefined:
		return "u"
	case KindNull:
		return "n"
	case KindTrue:
		return "t"
	case KindFalse:
		return "f"
	case KindNumber:
		return "d:" + strconv.FormatUint(math.Float64bits(v.num), 16)
	case KindString:
		return "s:" + v.str
	default:
		return fmt.Sprintf("p:%p", v.ref)
	}
}
