package jsonschema

// parseKeywordRequired requires an array of strings naming properties that
// must be present whenever the instance is an object (spec §3).
func parseKeywordRequired(ctx *Context, idx SchemaIndex, raw any) error {
	arr, ok := asArray(raw)
	if !ok {
		return newError(InvalidArrayType, "required", "#")
	}
	required := make([]string, 0, len(arr))
	for _, el := range arr {
		name, ok := el.(string)
		if !ok {
			return newError(InvalidStringType, "required", "#")
		}
		required = append(required, name)
	}
	ctx.get(idx).required = required
	return nil
}

// validateKeywordRequired only applies to object instances; any other kind
// trivially satisfies "required" (spec §4.5).
func validateKeywordRequired(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	for _, name := range ctx.get(idx).required {
		if _, present := obj[name]; !present {
			return newError(RequiredValidationFailed, "required", path)
		}
	}
	return nil
}
