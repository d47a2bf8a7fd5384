package jsonschema

import "strconv"

func parseKeywordAnyOf(ctx *Context, idx SchemaIndex, raw any) error {
	arr, ok := asArray(raw)
	if !ok {
		return newError(InvalidArrayType, "anyOf", "#")
	}
	children := make([]SchemaIndex, 0, len(arr))
	for _, el := range arr {
		child, err := parseSubschema(ctx, el)
		if err != nil {
			return err
		}
		children = append(children, child)
	}
	ctx.get(idx).anyOf = children
	return nil
}

// validateKeywordAnyOf requires at least one subschema to accept the
// instance (spec §4.5).
func validateKeywordAnyOf(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	for i, child := range ctx.get(idx).anyOf {
		if err := validateAt(ctx, child, instance, childPath(path, "anyOf/"+strconv.Itoa(i))); err == nil {
			return nil
		}
	}
	return newError(AnyOfValidationFailed, "anyOf", path)
}
