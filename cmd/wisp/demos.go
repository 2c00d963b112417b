package main

import (
	"github.com/wisplang/wisp/pkg/exec"
	"github.com/wisplang/wisp/pkg/value"
)

// demoScenario is one runnable example straight out of spec.md §8's
// end-to-end scenario list, built from the value core's public API
// instead of parsed source text.
type demoScenario struct {
	name string
	run  func(*exec.State) (value.Value, error)
}

var demos = []demoScenario{
	{"prototype-read-through", demoPrototypeReadThrough},
	{"locked-wall", demoLockedWall},
	{"slice-reverse", demoSliceReverse},
	{"metadispatch-no-recursion", demoMetadispatchNoRecursion},
}

// demoPrototypeReadThrough mirrors scenario 1: a locked prototype P
// with an instance-native "greet" method, and an object O with a
// "name" field and prototype P. get(O, "greet")() must return "x".
func demoPrototypeReadThrough(state *exec.State) (value.Value, error) {
	greet := value.NewInstanceNativeFunction("greet", func(state value.Host, self value.Value, args []value.Value) (value.Value, error) {
		return value.Get(self, mustString("name"))
	})

	protoVal := value.NewObject(value.Undefined)
	proto, _ := value.AsObject(protoVal)
	proto.SetState(state)
	if err := value.Set(protoVal, mustString("greet"), greet); err != nil {
		return value.Undefined, err
	}
	proto.Lock()

	obj := value.NewObject(protoVal)
	o, _ := value.AsObject(obj)
	o.SetState(state)
	if err := value.Set(obj, mustString("name"), mustString("x")); err != nil {
		return value.Undefined, err
	}

	bound, err := value.Get(obj, mustString("greet"))
	if err != nil {
		return value.Undefined, err
	}
	return state.Call(bound, nil)
}

// demoLockedWall mirrors scenario 2: writing a key that only exists
// on a locked prototype creates a fresh own field on the receiver
// instead of erroring or mutating the prototype.
func demoLockedWall(state *exec.State) (value.Value, error) {
	protoVal := value.NewObject(value.Undefined)
	proto, _ := value.AsObject(protoVal)
	if err := value.Set(protoVal, mustString("a"), value.Number(1)); err != nil {
		return value.Undefined, err
	}
	proto.Lock()

	obj := value.NewObject(protoVal)
	if err := value.Set(obj, mustString("a"), value.Number(2)); err != nil {
		return value.Undefined, err
	}

	// Prototype must be untouched; returning it lets the caller see
	// get(P, "a") == 1 alongside the own-field write on O.
	return value.Get(protoVal, mustString("a"))
}

// demoSliceReverse mirrors scenario 3's reverse case: slice(_, null,
// null, -1) on [1,2,3,4,5] yields [5,4,3,2,1].
func demoSliceReverse(state *exec.State) (value.Value, error) {
	arr := value.NewArray(value.Number(1), value.Number(2), value.Number(3), value.Number(4), value.Number(5))
	return value.Slice(arr, value.Undefined, value.Undefined, value.Number(-1))
}

// demoMetadispatchNoRecursion mirrors scenario 4: an object with a
// __get metamethod that itself reads an own field. A direct Get for a
// missing key must terminate with the metamethod's result rather than
// looping back through __get.
func demoMetadispatchNoRecursion(state *exec.State) (value.Value, error) {
	obj := value.NewObject(value.Undefined)
	o, _ := value.AsObject(obj)
	o.SetState(state)

	if err := value.Set(obj, mustString("x"), mustString("fallback")); err != nil {
		return value.Undefined, err
	}

	getHook := value.NewNativeFunction("__get", func(state value.Host, args []value.Value) (value.Value, error) {
		self := args[0]
		return value.Get(self, mustString("x"))
	})
	if err := value.Set(obj, mustString("__get"), getHook); err != nil {
		return value.Undefined, err
	}

	return value.Get(obj, mustString("y"))
}

func mustString(s string) value.Value {
	v, err := value.NewString(&s)
	if err != nil {
		panic(err)
	}
	return v
}
