package jsonschema

func parseKeywordNot(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).notSchema = child
	return nil
}

// validateKeywordNot requires the instance to FAIL the "not" subschema
// (spec §4.5).
func validateKeywordNot(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	if err := validateAt(ctx, ctx.get(idx).notSchema, instance, childPath(path, "not")); err == nil {
		return newError(NotValidationFailed, "not", path)
	}
	return nil
}
