package jsonschema

func parseKeywordAdditionalProperties(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).additionalProperties = child
	return nil
}

// validateKeywordAdditionalProperties applies its subschema to every
// instance property not claimed by "properties" or "patternProperties" on
// the same schema record (spec §4.5).
func validateKeywordAdditionalProperties(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	s := ctx.get(idx)

	claimed := make(map[string]bool, len(obj))
	for _, nc := range s.propertiesChildren {
		claimed[nc.name] = true
	}
	for _, pc := range s.patternProperties {
		for name := range obj {
			if pc.regex.MatchString(name) {
				claimed[name] = true
			}
		}
	}

	for name, value := range obj {
		if claimed[name] {
			continue
		}
		if err := validateAt(ctx, s.additionalProperties, value, childPath(path, name)); err != nil {
			return newError(AdditionalPropertiesValidationFailed, "additionalProperties", path)
		}
	}
	return nil
}
