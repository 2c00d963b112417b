package value

// testHost is the minimal Executor stand-in used across this
// package's tests: it can invoke Script and Native closures directly.
// InstanceNative closures must be bound via CheckWrapFunction first,
// matching the real indexer's contract.
type testHost struct{}

func (h testHost) Call(fn Value, args []Value) (Value, error) {
	cl, ok := AsClosure(fn)
	if !ok {
		return Undefined, &HostError{Msg: "value is not callable"}
	}
	return cl.Invoke(h, args)
}

func newTestObject(proto Value) Value {
	v := NewObject(proto)
	obj, _ := AsObject(v)
	obj.SetState(testHost{})
	return v
}
