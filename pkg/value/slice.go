package value

// Slice implements the uniform slice operator (spec §4.7) over
// String, Array, and Object (which delegates to __slice). Absent
// start/end/step are passed as Undefined.
func Slice(r Value, start, end, step Value) (Value, error) {
	switch r.kind {
	case KindString:
		runes := []rune(r.str)
		idxs, err := sliceIndices(len(runes), start, end, step)
		if err != nil {
			return Undefined, err
		}
		out := make([]rune, len(idxs))
		for i, si := range idxs {
			out[i] = runes[si]
		}
		return rawString(string(out)), nil

	case KindArray:
		arr := r.ref.(*Array)
		idxs, err := sliceIndices(arr.Len(), start, end, step)
		if err != nil {
			return Undefined, err
		}
		out := make([]Value, len(idxs))
		for i, si := range idxs {
			out[i] = arr.items[si]
		}
		return NewArray(out...), nil

	case KindObject:
		result, dispatched, err := TryDispatch(r, "__slice", []Value{start, end, step})
		if err != nil {
			return Undefined, err
		}
		if !dispatched {
			return Undefined, &Error{Code: SliceMissingMethod}
		}
		return result, nil

	default:
		return Undefined, &Error{Code: SliceWrongType}
	}
}

// sliceIndices normalizes start/end/step against a source of the
// given length and returns the concrete source indices to copy, in
// order (spec §4.7).
func sliceIndices(length int, startV, endV, stepV Value) ([]int, error) {
	// "Absent or falsy" is read as "nullish" (Undefined or Null) for
	// slice defaults specifically, not the general IsTruthy rule —
	// see DESIGN.md. This keeps an explicit step=0 a real, rejectable
	// value instead of silently promoting it to a default.
	startGiven := !startV.isNullish()
	endGiven := !endV.isNullish()
	stepGiven := !stepV.isNullish()

	if length == 0 && !startGiven && !endGiven {
		return []int{}, nil
	}

	start := 0
	if startGiven {
		n, err := ToInteger(startV)
		if err != nil {
			return nil, err
		}
		start = int(n)
	}

	end := maxInt(0, length-1)
	if endGiven {
		n, err := ToInteger(endV)
		if err != nil {
			return nil, err
		}
		end = int(n)
	}

	var step int
	if stepGiven {
		n, err := ToInteger(stepV)
		if err != nil {
			return nil, err
		}
		step = int(n)
	} else if start <= end {
		step = 1
	} else {
		step = -1
	}

	// Reverse special case: only reachable with an explicit negative
	// step, since the defaulted start/end above always satisfy
	// start <= end for length >= 1.
	if step < 0 && !startGiven && !endGiven {
		start = maxInt(0, length-1)
		end = 0
	}

	if start < 0 {
		start += length
	}
	if end < 0 {
		end += length
	}

	// Bounds-checked unconditionally: the only length==0 case allowed
	// to skip this is the all-defaulted one already returned above. An
	// explicit endpoint on an empty source (e.g. start=3 on a
	// zero-length array) must still fail, not be taken as a valid
	// index into an empty backing slice.
	if start < 0 || start >= length {
		return nil, &Error{Code: SliceStartBounds, Args: []Value{Number(float64(start))}}
	}
	if end < 0 || end >= length {
		return nil, &Error{Code: SliceEndBounds, Args: []Value{Number(float64(end))}}
	}

	if step == 0 {
		return nil, &Error{Code: SliceStepZero}
	}

	if step > 0 && start > end {
		return nil, &Error{Code: SliceInvalid}
	}
	if step < 0 && start < end {
		return nil, &Error{Code: SliceInvalid}
	}

	rng := end - start + sign(step)
	count := rng / step
	if rng%step != 0 {
		count++
	}
	if count < 0 {
		count = 0
	}

	out := make([]int, count)
	for i := range out {
		out[i] = start + i*step
	}
	return out, nil
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
