package jsonschema

func parseKeywordDependentSchemas(ctx *Context, idx SchemaIndex, raw any) error {
	obj, ok := asObject(raw)
	if !ok {
		return newError(InvalidObjectType, "dependentSchemas", "#")
	}
	children := make([]namedChild, 0, len(obj))
	for name, value := range obj {
		child, err := parseSubschema(ctx, value)
		if err != nil {
			return err
		}
		children = append(children, namedChild{name: name, schema: child})
	}
	ctx.get(idx).dependentSchemas = children
	return nil
}

// validateKeywordDependentSchemas validates the WHOLE instance, not just
// the triggering property's value, against each dependent schema whose
// trigger property is present (spec §3/§4.5).
func validateKeywordDependentSchemas(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	for _, nc := range ctx.get(idx).dependentSchemas {
		if _, present := obj[nc.name]; !present {
			continue
		}
		if err := validateAt(ctx, nc.schema, instance, childPath(path, nc.name)); err != nil {
			return newError(DependentSchemasValidationFailed, "dependentSchemas", path)
		}
	}
	return nil
}
