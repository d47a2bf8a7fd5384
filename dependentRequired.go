package jsonschema

// parseKeywordDependentRequired requires an object whose values are each an
// array of property-name strings (spec §3).
func parseKeywordDependentRequired(ctx *Context, idx SchemaIndex, raw any) error {
	obj, ok := asObject(raw)
	if !ok {
		return newError(InvalidObjectType, "dependentRequired", "#")
	}
	deps := make(map[string][]string, len(obj))
	for key, value := range obj {
		arr, ok := asArray(value)
		if !ok {
			return newError(InvalidArrayType, "dependentRequired", "#")
		}
		names := make([]string, 0, len(arr))
		for _, el := range arr {
			name, ok := el.(string)
			if !ok {
				return newError(InvalidStringType, "dependentRequired", "#")
			}
			names = append(names, name)
		}
		deps[key] = names
	}
	ctx.get(idx).dependentRequired = deps
	return nil
}

// validateKeywordDependentRequired checks, for every key present in the
// instance, that all of its declared dependent properties are also present
// (spec §4.5).
func validateKeywordDependentRequired(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	for key, names := range ctx.get(idx).dependentRequired {
		if _, present := obj[key]; !present {
			continue
		}
		for _, name := range names {
			if _, present := obj[name]; !present {
				return newError(DependentRequiredValidationFailed, "dependentRequired", path)
			}
		}
	}
	return nil
}
