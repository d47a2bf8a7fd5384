package jsonschema

import "strconv"

func parseKeywordItems(ctx *Context, idx SchemaIndex, raw any) error {
	child, err := parseSubschema(ctx, raw)
	if err != nil {
		return err
	}
	ctx.get(idx).items = child
	return nil
}

// validateKeywordItems applies its subschema to every array element past
// the ones already claimed by prefixItems, per spec §4.5's "items picks up
// where prefixItems left off".
func validateKeywordItems(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	s := ctx.get(idx)
	startIndex := len(s.prefixItems)
	for i := startIndex; i < len(arr); i++ {
		if err := validateAt(ctx, s.items, arr[i], childPath(path, "items/"+strconv.Itoa(i))); err != nil {
			return newError(ItemsValidationFailed, "items", path)
		}
	}
	return nil
}
