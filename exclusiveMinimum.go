package jsonschema

func parseKeywordExclusiveMinimum(ctx *Context, idx SchemaIndex, raw any) error {
	r, ok := toRat(raw)
	if !ok {
		return newError(InvalidNumberType, "exclusiveMinimum", "#")
	}
	ctx.get(idx).exclusiveMinimum = r
	return nil
}

func validateKeywordExclusiveMinimum(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	value, ok := toRat(instance)
	if !ok {
		return nil
	}
	if value.Cmp(ctx.get(idx).exclusiveMinimum) <= 0 {
		return newError(ExclusiveMinValidationFailed, "exclusiveMinimum", path)
	}
	return nil
}
