package jsonschema

import "unicode/utf8"

func parseKeywordMaxLength(ctx *Context, idx SchemaIndex, raw any) error {
	n, ok := asNonNegInt(raw)
	if !ok {
		return newError(InvalidIntegerType, "maxLength", "#")
	}
	ctx.get(idx).maxLength = n
	return nil
}

func validateKeywordMaxLength(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	str, ok := instance.(string)
	if !ok {
		return nil
	}
	if utf8.RuneCountInString(str) > ctx.get(idx).maxLength {
		return newError(MaxLengthValidationFailed, "maxLength", path)
	}
	return nil
}
