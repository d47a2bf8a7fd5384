package jsonschema

// parseKeywordConst accepts any JSON value, including null, as the
// constant to compare against (spec §3).
func parseKeywordConst(ctx *Context, idx SchemaIndex, raw any) error {
	s := ctx.get(idx)
	s.constValue = raw
	return nil
}

func validateKeywordConst(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	if !deepEqual(instance, ctx.get(idx).constValue) {
		return newError(ConstValidationFailed, "const", path)
	}
	return nil
}
