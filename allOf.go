package jsonschema

import "strconv"

// parseKeywordAllOf requires an array of subschemas, each parsed
// independently and recorded by index (spec §3). An empty array is
// accepted.
func parseKeywordAllOf(ctx *Context, idx SchemaIndex, raw any) error {
	arr, ok := asArray(raw)
	if !ok {
		return newError(InvalidArrayType, "allOf", "#")
	}
	children := make([]SchemaIndex, 0, len(arr))
	for _, el := range arr {
		child, err := parseSubschema(ctx, el)
		if err != nil {
			return err
		}
		children = append(children, child)
	}
	ctx.get(idx).allOf = children
	return nil
}

// validateKeywordAllOf requires the instance to satisfy every subschema,
// short-circuiting on the first one that fails (spec §4.5).
func validateKeywordAllOf(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	for i, child := range ctx.get(idx).allOf {
		if err := validateAt(ctx, child, instance, childPath(path, "allOf/"+strconv.Itoa(i))); err != nil {
			return newError(AllOfValidationFailed, "allOf", path)
		}
	}
	return nil
}
