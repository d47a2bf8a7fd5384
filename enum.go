package jsonschema

// parseKeywordEnum requires "enum" to be an array; its elements may be of
// any type, including null, and are compared with deepEqual at validate
// time (spec §3, §4.6).
func parseKeywordEnum(ctx *Context, idx SchemaIndex, raw any) error {
	arr, ok := asArray(raw)
	if !ok {
		return newError(InvalidEnumType, "enum", "#")
	}
	ctx.get(idx).enums = arr
	return nil
}

func validateKeywordEnum(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	for _, v := range ctx.get(idx).enums {
		if deepEqual(instance, v) {
			return nil
		}
	}
	return newError(EnumValidationFailed, "enum", path)
}
