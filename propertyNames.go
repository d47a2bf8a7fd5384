package jsonschema

func parseKeywordPropertyNames(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).propertyNames = child
	return nil
}

// validateKeywordPropertyNames validates every instance key as a string
// against the propertyNames subschema (spec §4.5).
func validateKeywordPropertyNames(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	schema := ctx.get(idx).propertyNames
	for name := range obj {
		if err := validateAt(ctx, schema, name, childPath(path, name)); err != nil {
			return newError(PropertyNamesValidationFailed, "propertyNames", path)
		}
	}
	return nil
}
