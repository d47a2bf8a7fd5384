package jsonschema

func parseKeywordMinItems(ctx *Context, idx SchemaIndex, raw any) error {
	n, ok := asNonNegInt(raw)
	if !ok {
		return newError(InvalidIntegerType, "minItems", "#")
	}
	ctx.get(idx).minItems = n
	return nil
}

func validateKeywordMinItems(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	if len(arr) < ctx.get(idx).minItems {
		return newError(MinItemsValidationFailed, "minItems", path)
	}
	return nil
}
