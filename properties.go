package jsonschema

// parseKeywordProperties requires an object whose values are each a valid
// subschema, recorded as namedChild pairs so the validator can recover the
// originating property name (spec §3).
func parseKeywordProperties(ctx *Context, idx SchemaIndex, raw any) error {
	obj, ok := asObject(raw)
	if !ok {
		return newError(InvalidObjectType, "properties", "#")
	}
	children := make([]namedChild, 0, len(obj))
	for name, value := range obj {
		child, err := parseSubschema(ctx, value)
		if err != nil {
			return err
		}
		children = append(children, namedChild{name: name, schema: child})
	}
	ctx.get(idx).propertiesChildren = children
	return nil
}

// validateKeywordProperties only checks property names present in both the
// instance and the schema; a named property absent from the instance is
// not validated here (that is "required"'s job, spec §4.5). A failing
// property's own error is returned unchanged.
func validateKeywordProperties(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	for _, nc := range ctx.get(idx).propertiesChildren {
		value, present := obj[nc.name]
		if !present {
			continue
		}
		if err := validateAt(ctx, nc.schema, value, childPath(path, nc.name)); err != nil {
			return err
		}
	}
	return nil
}
