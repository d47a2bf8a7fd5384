package jsonschema

import "unicode/utf8"

func parseKeywordMinLength(ctx *Context, idx SchemaIndex, raw any) error {
	n, ok := asNonNegInt(raw)
	if !ok {
		return newError(InvalidIntegerType, "minLength", "#")
	}
	ctx.get(idx).minLength = n
	return nil
}

// validateKeywordMinLength counts runes, not bytes, per spec §4.5's "string
// length is RFC 8259 characters, not UTF-8 bytes."
func validateKeywordMinLength(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	str, ok := instance.(string)
	if !ok {
		return nil
	}
	if utf8.RuneCountInString(str) < ctx.get(idx).minLength {
		return newError(MinLengthValidationFailed, "minLength", path)
	}
	return nil
}
