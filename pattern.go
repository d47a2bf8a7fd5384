package jsonschema

import "regexp"

// parseKeywordPattern compiles the regex once at parse time rather than
// lazily at validate time, so a malformed pattern is reported as a parse
// error instead of surfacing on the first instance that exercises it.
func parseKeywordPattern(ctx *Context, idx SchemaIndex, raw any) error {
	src, ok := asString(raw)
	if !ok {
		return newError(InvalidStringType, "pattern", "#")
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return newError(RegexCompilerError, "pattern", "#")
	}
	s := ctx.get(idx)
	s.patternSource = src
	s.pattern = re
	return nil
}

// validateKeywordPattern only applies to string instances; regular
// expressions are not implicitly anchored (spec §3).
func validateKeywordPattern(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	str, ok := instance.(string)
	if !ok {
		return nil
	}
	if !ctx.get(idx).pattern.MatchString(str) {
		return newError(PatternValidationFailed, "pattern", path)
	}
	return nil
}
