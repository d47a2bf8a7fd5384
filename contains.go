package jsonschema

import "strconv"

func parseKeywordContains(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).contains = child
	return nil
}

func parseKeywordMaxContains(ctx *Context, idx SchemaIndex, raw any) error {
	n, ok := asNonNegInt(raw)
	if !ok {
		return newError(InvalidIntegerType, "maxContains", "#")
	}
	ctx.get(idx).maxContains = n
	return nil
}

func parseKeywordMinContains(ctx *Context, idx SchemaIndex, raw any) error {
	n, ok := asNonNegInt(raw)
	if !ok {
		return newError(InvalidIntegerType, "minContains", "#")
	}
	ctx.get(idx).minContains = n
	return nil
}

// validateKeywordContains counts array elements matching the contains
// subschema and enforces minContains/maxContains against that count.
// minContains defaults to 1 when absent (spec §4.5); maxContains has no
// validate handler of its own, its effect lives entirely here.
func validateKeywordContains(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	s := ctx.get(idx)

	matched := 0
	for i, el := range arr {
		if validateAt(ctx, s.contains, el, childPath(path, "contains/"+strconv.Itoa(i))) == nil {
			matched++
		}
	}

	minContains := 1
	if s.validationFlags.has(KeywordMinContains) {
		minContains = s.minContains
	}
	if matched < minContains {
		return newError(MinContainsValidationFailed, "minContains", path)
	}
	if s.validationFlags.has(KeywordMaxContains) && matched > s.maxContains {
		return newError(MaxContainsValidationFailed, "maxContains", path)
	}
	return nil
}
