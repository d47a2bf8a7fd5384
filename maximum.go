package jsonschema

func parseKeywordMaximum(ctx *Context, idx SchemaIndex, raw any) error {
	r, ok := toRat(raw)
	if !ok {
		return newError(InvalidNumberType, "maximum", "#")
	}
	ctx.get(idx).maximum = r
	return nil
}

func validateKeywordMaximum(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	value, ok := toRat(instance)
	if !ok {
		return nil
	}
	if value.Cmp(ctx.get(idx).maximum) > 0 {
		return newError(MaximumValidationFailed, "maximum", path)
	}
	return nil
}
