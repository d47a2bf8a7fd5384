package jsonschema

func parseKeywordMinimum(ctx *Context, idx SchemaIndex, raw any) error {
	r, ok := toRat(raw)
	if !ok {
		return newError(InvalidNumberType, "minimum", "#")
	}
	ctx.get(idx).minimum = r
	return nil
}

// validateKeywordMinimum only applies to numeric instances; "minimum" on a
// non-numeric instance trivially passes (spec §4.5).
func validateKeywordMinimum(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	value, ok := toRat(instance)
	if !ok {
		return nil
	}
	if value.Cmp(ctx.get(idx).minimum) < 0 {
		return newError(MinimumValidationFailed, "minimum", path)
	}
	return nil
}
