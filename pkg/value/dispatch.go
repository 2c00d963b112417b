package value

// TryDispatch implements Metadispatch (spec §4.10): a prototype-chain
// lookup for a named metamethod, separate from the public indexer.
//
// It walks starting at R itself, using only raw own-property lookups
// — never Get — so that it can never recurse through a __get
// metamethod. This separation is mandatory (spec §9, "Metamethod
// recursion"): implementing it by recursing into the indexer would
// infinite-loop the moment an object defines __get.
func TryDispatch(r Value, name string, args []Value) (Value, bool, error) {
	if r.kind != KindObject {
		return Undefined, false, nil
	}
	key := rawString(name)
	result, node, found, err := walkChain(r, true, func(n *Object) (Value, bool) {
		return n.ownGet(key)
	})
	if err != nil {
		return Undefined, false, err
	}
	if !found {
		return Undefined, false, nil
	}
	callable := CheckWrapFunction(result, r)
	if node.state == nil {
		return Undefined, false, &HostError{Msg: "metamethod " + name + " found but no Host is attached"}
	}
	out, err := node.state.Call(callable, args)
	if err != nil {
		return Undefined, false, err
	}
	return out, true, nil
}
