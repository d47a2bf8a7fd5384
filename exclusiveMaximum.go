package jsonschema

func parseKeywordExclusiveMaximum(ctx *Context, idx SchemaIndex, raw any) error {
	r, ok := toRat(raw)
	if !ok {
		return newError(InvalidNumberType, "exclusiveMaximum", "#")
	}
	ctx.get(idx).exclusiveMaximum = r
	return nil
}

func validateKeywordExclusiveMaximum(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	value, ok := toRat(instance)
	if !ok {
		return nil
	}
	if value.Cmp(ctx.get(idx).exclusiveMaximum) >= 0 {
		return newError(ExclusiveMaxValidationFailed, "exclusiveMaximum", path)
	}
	return nil
}
