package jsonschema

import "regexp"

// parseKeywordPatternProperties compiles each pattern key up front so a
// malformed regex surfaces as a parse error rather than at validate time
// (spec §3).
func parseKeywordPatternProperties(ctx *Context, idx SchemaIndex, raw any) error {
	obj, ok := asObject(raw)
	if !ok {
		return newError(InvalidObjectType, "patternProperties", "#")
	}
	children := make([]patternChild, 0, len(obj))
	for pattern, value := range obj {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return newError(RegexCompilerError, "patternProperties", "#")
		}
		child, perr := parseSubschema(ctx, value)
		if perr != nil {
			return perr
		}
		children = append(children, patternChild{regex: re, schema: child})
	}
	ctx.get(idx).patternProperties = children
	return nil
}

// validateKeywordPatternProperties checks every instance property name
// against every pattern, validating matched values against the associated
// subschema (spec §4.5).
func validateKeywordPatternProperties(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	obj, ok := instance.(map[string]any)
	if !ok {
		return nil
	}
	for _, pc := range ctx.get(idx).patternProperties {
		for name, value := range obj {
			if !pc.regex.MatchString(name) {
				continue
			}
			if err := validateAt(ctx, pc.schema, value, childPath(path, name)); err != nil {
				return newError(PatternPropertiesValidationFailed, "patternProperties", path)
			}
		}
	}
	return nil
}
