package jsonschema

func parseKeywordMaxItems(ctx *Context, idx SchemaIndex, raw any) error {
	n, ok := asNonNegInt(raw)
	if !ok {
		return newError(InvalidIntegerType, "maxItems", "#")
	}
	ctx.get(idx).maxItems = n
	return nil
}

func validateKeywordMaxItems(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	if len(arr) > ctx.get(idx).maxItems {
		return newError(MaxItemsValidationFailed, "maxItems", path)
	}
	return nil
}
