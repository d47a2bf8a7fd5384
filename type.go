package jsonschema

// parseKeywordType accepts either a single type name string or an array of
// type name strings, per spec §3's "type" contract. An empty array is
// accepted and then matches no instance.
func parseKeywordType(ctx *Context, idx SchemaIndex, raw any) error {
	s := ctx.get(idx)
	switch v := raw.(type) {
	case string:
		t := parseInstanceType(v)
		if t == TypeInvalid {
			return newError(InvalidInstanceType, "type", "#")
		}
		s.types = []InstanceType{t}
		return nil
	case []any:
		types := make([]InstanceType, 0, len(v))
		for _, el := range v {
			name, ok := el.(string)
			if !ok {
				return newError(ExpectedArrayOrString, "type", "#")
			}
			t := parseInstanceType(name)
			if t == TypeInvalid {
				return newError(InvalidInstanceType, "type", "#")
			}
			types = append(types, t)
		}
		s.types = types
		return nil
	default:
		return newError(ExpectedArrayOrString, "type", "#")
	}
}

// validateKeywordType checks the instance's runtime kind against the
// declared type list. A schema typed "number" accepts an integer instance,
// since every integer is a number (spec §4.5).
func validateKeywordType(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	s := ctx.get(idx)
	instanceType := classifyType(instance)
	for _, t := range s.types {
		if t == instanceType {
			return nil
		}
		if t == TypeNumber && instanceType == TypeInteger {
			return nil
		}
	}
	return newError(TypeValidationFailed, "type", path)
}
