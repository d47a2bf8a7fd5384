package jsonschema

func parseKeywordUniqueItems(ctx *Context, idx SchemaIndex, raw any) error {
	b, ok := raw.(bool)
	if !ok {
		return newError(InvalidInstanceType, "uniqueItems", "#")
	}
	ctx.get(idx).uniqueItems = b
	return nil
}

// validateKeywordUniqueItems does a pairwise deepEqual scan. The closed,
// small value model decoded by decodeJSON (nil/bool/json.Number/string/
// []any/map[string]any) makes deepEqual sufficient; there is no arbitrary
// Go type that would need a reflection fallback.
func validateKeywordUniqueItems(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	if !ctx.get(idx).uniqueItems {
		return nil
	}
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	for i := 0; i < len(arr); i++ {
		for j := i + 1; j < len(arr); j++ {
			if deepEqual(arr[i], arr[j]) {
				return newError(UniqueItemsValidationFailed, "uniqueItems", path)
			}
		}
	}
	return nil
}
