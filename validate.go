package jsonschema

// ValidateString decodes text as JSON and validates it against the schema
// at root within ctx, per spec §6's validate_string.
func ValidateString(text []byte, root SchemaIndex, ctx *Context) error {
	value, err := decodeJSON(text)
	if err != nil {
		return err
	}
	return ValidateValue(value, root, ctx)
}

// ValidateValue validates an already-decoded JSON value against the
// schema at root within ctx, per spec §6's validate_value. It returns nil
// on success or a *Error naming the first keyword (in dispatch-table
// order) that failed — spec §4.5/§7: "validation intentionally reports
// exactly one failing keyword... and does not attempt to enumerate all
// failures."
func ValidateValue(value any, root SchemaIndex, ctx *Context) error {
	if err := validateAt(ctx, root, value, ""); err != nil {
		return err
	}
	return nil
}

// validateAt is the recursion point every applicator's validate handler
// calls to check a nested instance against a nested schema.
func validateAt(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	s := ctx.get(idx)

	if s.isBoolSchema {
		if s.boolSchemaVal {
			return nil
		}
		return newError(BoolSchemaFalse, "", path)
	}

	for _, entry := range dispatchTable {
		if entry.validate == nil {
			continue
		}
		if !s.validationFlags.has(entry.keyword) {
			continue
		}
		if err := entry.validate(ctx, idx, instance, path); err != nil {
			return err
		}
	}
	return nil
}

func childPath(path, segment string) string {
	return path + "/" + segment
}
