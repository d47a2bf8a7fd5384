package jsonschema

import "strconv"

func parseKeywordOneOf(ctx *Context, idx SchemaIndex, raw any) error {
	arr, ok := asArray(raw)
	if !ok {
		return newError(InvalidArrayType, "oneOf", "#")
	}
	children := make([]SchemaIndex, 0, len(arr))
	for _, el := range arr {
		child, err := parseSubschema(ctx, el)
		if err != nil {
			return err
		}
		children = append(children, child)
	}
	ctx.get(idx).oneOf = children
	return nil
}

// validateKeywordOneOf requires exactly one subschema to accept the
// instance (spec §4.5).
func validateKeywordOneOf(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	matches := 0
	for i, child := range ctx.get(idx).oneOf {
		if err := validateAt(ctx, child, instance, childPath(path, "oneOf/"+strconv.Itoa(i))); err == nil {
			matches++
		}
	}
	if matches != 1 {
		return newError(OneOfValidationFailed, "oneOf", path)
	}
	return nil
}
