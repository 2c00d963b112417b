package value

// Get implements the indexer's read path (spec §4.3).
func Get(r Value, k Value) (Value, error) {
	if arr, ok := AsArray(r); ok && (k.kind == KindNumber || k.kind == KindObject) {
		idx, err := arrayIndex(k, arr.Len())
		if err != nil {
			return Undefined, err
		}
		return arr.items[idx], nil
	}

	if obj, ok := AsObject(r); ok {
		if v, found := obj.ownGet(k); found {
			return CheckWrapFunction(v, r), nil
		}
	}

	v, _, found, err := walkChain(r, false, func(n *Object) (Value, bool) {
		return n.ownGet(k)
	})
	if err != nil {
		return Undefined, err
	}
	if found {
		return CheckWrapFunction(v, r), nil
	}

	if _, ok := AsObject(r); ok {
		result, dispatched, err := TryDispatch(r, "__get", []Value{r, k})
		if err != nil {
			return Undefined, err
		}
		if dispatched {
			return CheckWrapFunction(result, r), nil
		}
	}

	return Undefined, nil
}

// Set implements the indexer's write path (spec §4.4).
func Set(r Value, k Value, v Value) error {
	if arr, ok := AsArray(r); ok && (k.kind == KindNumber || k.kind == KindObject) {
		idx, err := arrayIndex(k, arr.Len())
		if err != nil {
			return err
		}
		arr.items[idx] = v
		return nil
	}

	if obj, ok := AsObject(r); ok {
		if _, found := obj.ownGet(k); found {
			if obj.locked {
				return &Error{Code: ObjectIsLocked}
			}
			obj.ownSet(k, v)
			return nil
		}
	}

	wallHit := false
	_, _, found, err := walkChain(r, false, func(n *Object) (Value, bool) {
		if _, ok := n.ownGet(k); ok {
			if n.locked {
				// Locked wall: stop the walk entirely. Neither
				// overwrite nor continue past this ancestor — a
				// derived object may still legitimately shadow this
				// key with a fresh own field (spec §4.4 rationale).
				wallHit = true
				return Undefined, true
			}
			n.ownSet(k, v)
			return Undefined, true
		}
		return Undefined, false
	})
	if err != nil {
		return err
	}
	if found && !wallHit {
		return nil
	}

	obj, ok := AsObject(r)
	if !ok {
		return &Error{Code: CantCreateField}
	}
	if obj.locked {
		return &Error{Code: ObjectIsLocked}
	}

	_, dispatched, err := TryDispatch(r, "__set", []Value{r, k, v})
	if err != nil {
		return err
	}
	if dispatched {
		return nil
	}

	obj.ownSet(k, v)
	return nil
}

// arrayIndex coerces an array key to a bounds-checked, wraparound-
// folded index, shared by Get and Set (spec §4.3 step 1, §4.4 step 1).
func arrayIndex(k Value, length int) (int, error) {
	n, err := ToInteger(k)
	if err != nil {
		return 0, err
	}
	idx := int(n)
	if idx < 0 {
		idx += length
	}
	if idx < 0 || idx >= length {
		return 0, &Error{Code: IndexOutOfBounds, Args: []Value{k}}
	}
	return idx, nil
}
