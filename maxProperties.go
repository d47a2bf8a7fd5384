package jsonschema

func parseKeywordMaxProperties(ctx *Context, idx SchemaIndex, raw any) error {
	n, ok := asNonNegInt(raw)
	if !ok {
		return newError(InvalidIntegerType, "maxProperties", "#")
	}
	ctx.get(idx).maxProperties = n
	return nil
}

func validateKeywordMaxProperties(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	if len(obj) > ctx.get(idx).maxProperties {
		return newError(MaxPropertiesValidationFailed, "maxProperties", path)
	}
	return nil
}
