package jsonschema

import "strconv"

// parseKeywordPrefixItems requires an array of subschemas, one per
// positional slot at the front of the instance array (spec §3). An empty
// array is accepted.
func parseKeywordPrefixItems(ctx *Context, idx SchemaIndex, raw any) error {
	arr, ok := asArray(raw)
	if !ok {
		return newError(InvalidArrayType, "prefixItems", "#")
	}
	children := make([]SchemaIndex, 0, len(arr))
	for _, el := range arr {
		child, err := parseSubschema(ctx, el)
		if err != nil {
			return err
		}
		children = append(children, child)
	}
	ctx.get(idx).prefixItems = children
	return nil
}

// validateKeywordPrefixItems checks array[i] against prefixItems[i] for
// every i within range of both; an instance shorter than prefixItems is not
// an error, it just leaves the extra schemas unapplied (spec §4.5).
func validateKeywordPrefixItems(ctx *Context, idx SchemaIndex, instance any, path string) *Error {
	arr, ok := instance.([]any)
	if !ok {
		return nil
	}
	for i, child := range ctx.get(idx).prefixItems {
		if i >= len(arr) {
			break
		}
		if err := validateAt(ctx, child, arr[i], childPath(path, "prefixItems/"+strconv.Itoa(i))); err != nil {
			return newError(PrefixItemsValidationFailed, "prefixItems", path)
		}
	}
	return nil
}
