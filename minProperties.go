package jsonschema

func parseKeywordMinProperties(ctx *Context, idx SchemaIndex, raw any) error {
	n, ok := asNonNegInt(raw)
	if !ok {
		return newError(InvalidIntegerType, "minProperties", "#")
	}
	ctx.get(idx).minProperties = n
	return nil
}

func validateKeywordMinProperties(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	if len(obj) < ctx.get(idx).minProperties {
		return newError(MinPropertiesValidationFailed, "minProperties", path)
	}
	return nil
}
