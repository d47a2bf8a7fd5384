package jsonschema

// deepEqual implements spec §4.6's deep equality: same kind and value for
// null/boolean/string; integer/number cross-compare exactly (an integer
// and a float are equal iff the float has a zero fractional part and
// equals the integer); arrays compare length and element-wise; objects
// compare key sets and per-key values with key order immaterial.
func deepEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch av := a.(type) {
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !deepEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			bvv, ok := bv[k]
			if !ok || !deepEqual(v, bvv) {
				return false
			}
		}
		return true
	default:
		// Both sides must be numeric (json.Number or float64); compared
		// as exact rationals so an integer and a same-valued float (and
		// two differently-formatted integers) compare equal without
		// binary floating-point rounding error.
		ar, aok := toRat(a)
		br, bok := toRat(b)
		if !aok || !bok {
			return false
		}
		return ar.Cmp(br) == 0
	}
}
