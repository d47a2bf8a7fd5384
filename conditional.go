package jsonschema

func parseKeywordIf(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).ifSchema = child
	return nil
}

func parseKeywordThen(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).thenSchema = child
	return nil
}

func parseKeywordElse(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).elseSchema = child
	return nil
}

// validateKeywordIf implements the if/then/else triad as a single handler
// keyed on "if" being present, since "then"/"else" are meaningless without
// it (spec §3/§4.5): when the instance satisfies "if", "then" must also
// accept it if present; otherwise "else" must accept it if present.
func validateKeywordIf(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	s := ctx.get(idx)
	ifPasses := validateAt(ctx, s.ifSchema, instance, childPath(path, "if")) == nil

	if ifPasses {
		if s.thenSchema == invalidIndex {
			return nil
		}
		if err := validateAt(ctx, s.thenSchema, instance, childPath(path, "then")); err != nil {
			return newError(IfThenValidationFailed, "then", path)
		}
		return nil
	}

	if s.elseSchema == invalidIndex {
		return nil
	}
	if err := validateAt(ctx, s.elseSchema, instance, childPath(path, "else")); err != nil {
		return newError(IfElseValidationFailed, "else", path)
	}
	return nil
}
