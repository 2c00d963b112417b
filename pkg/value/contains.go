package value

import "strings"

// Contains implements the `in` operator (spec §4.8).
func Contains(needle, r Value) (bool, error) {
	switch {
	case r.kind == KindString && needle.kind == KindString:
		return strings.Contains(r.str, needle.str), nil

	case r.kind == KindArray:
		arr := r.ref.(*Array)
		for _, item := range arr.items {
			eq, err := Equals(needle, item)
			if err != nil {
				return false, err
			}
			if eq {
				return true, nil
			}
		}
		return false, nil

	case r.kind == KindObject:
		obj := r.ref.(*Object)
		if _, found := obj.ownGet(needle); found {
			return true, nil
		}
		result, dispatched, err := TryDispatch(r, "__in", []Value{r, needle})
		if err != nil {
			return false, err
		}
		if dispatched {
			return result.IsTruthy(), nil
		}
		return false, nil

	default:
		return false, &Error{Code: CantUseOperatorOnTypes}
	}
}
